//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// deckOption tweaks the generated .reel.toml
type deckOption func(*deckFixture)

type deckFixture struct {
	slides   []string
	auto     bool
	interval string
}

// WithSlides replaces the default slide titles
func WithSlides(titles ...string) deckOption {
	return func(d *deckFixture) { d.slides = titles }
}

// WithAutoPlay turns on auto-play at the given interval
func WithAutoPlay(interval string) deckOption {
	return func(d *deckFixture) {
		d.auto = true
		d.interval = interval
	}
}

// CreateTestWorkspace creates an isolated workspace directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteDeck writes a .reel.toml into the workspace and returns its path
func (tf *TUITestFramework) WriteDeck(options ...deckOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	d := deckFixture{slides: []string{"Alpha", "Beta", "Gamma"}}
	for _, opt := range options {
		opt(&d)
	}

	var b strings.Builder
	b.WriteString("watch = false\n\n[slider]\n")
	fmt.Fprintf(&b, "auto = %t\n", d.auto)
	if d.interval != "" {
		fmt.Fprintf(&b, "auto_interval = %q\n", d.interval)
	}
	b.WriteString("circle = true\nswitch_delay = \"50ms\"\n\n[slider.animation]\nname = \"default\"\n\n[ui]\ntitle = \"e2e deck\"\n")
	for _, title := range d.slides {
		fmt.Fprintf(&b, "\n[[slides]]\ntitle = %q\nbody = %q\n", title, "body of "+strings.ToLower(title))
	}

	path := filepath.Join(tf.workspace, ".reel.toml")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// StartDeck writes a deck and launches reel play against it
func (tf *TUITestFramework) StartDeck(options ...deckOption) error {
	path, err := tf.WriteDeck(options...)
	if err != nil {
		return err
	}
	return tf.StartApp("play",
		"--dir", tf.workspace,
		"--config", path,
		"--log-file", filepath.Join(tf.workspace, "reel.log"),
	)
}
