// Package deck turns configuration and slide files into a domain.Deck and
// keeps it fresh when those files change.
package deck

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"reel/internal/config"
	"reel/internal/domain"
	"reel/internal/logging"
)

// Loader builds decks from configuration
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loader{log: logger}
}

// Load assembles the deck: inline and file slides in config order, then
// every slide file in the slides directory sorted by name.
func (l *Loader) Load(cfg *config.Config) (*domain.Deck, error) {
	d := &domain.Deck{Name: cfg.Name}
	if cfg.UI.Title != "" {
		d.Name = cfg.UI.Title
	}

	for i, sc := range cfg.Slides {
		if sc.File == "" {
			d.Slides = append(d.Slides, domain.Slide{
				Title:  sc.Title,
				Body:   sc.Body,
				Format: formatOf(sc.Format, ""),
			})
			continue
		}

		s, err := ReadSlide(sc.File)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		if sc.Title != "" {
			s.Title = sc.Title
		}
		if sc.Format != "" {
			s.Format = formatOf(sc.Format, "")
		}
		d.Slides = append(d.Slides, s)
	}

	if cfg.SlidesDir != "" {
		slides, err := ScanDir(cfg.SlidesDir)
		if err != nil {
			return nil, err
		}
		d.Slides = append(d.Slides, slides...)
	}

	l.log.Info("deck loaded", "name", d.Name, "slides", len(d.Slides))
	return d, nil
}

// ScanDir reads every slide file directly inside dir, sorted by file name.
// Hidden files and unknown extensions are skipped.
func ScanDir(dir string) ([]domain.Slide, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read slides dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !IsSlideFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	slides := make([]domain.Slide, 0, len(names))
	for _, name := range names {
		s, err := ReadSlide(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, nil
}

// ReadSlide reads one slide file. Markdown slides take their title from
// the first heading; anything else is titled after the file name.
func ReadSlide(path string) (domain.Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Slide{}, fmt.Errorf("slide file not found: %s: %w", path, fs.ErrNotExist)
		}
		return domain.Slide{}, fmt.Errorf("failed to read slide: %w", err)
	}

	s := domain.Slide{
		Body:   strings.TrimRight(string(data), "\n"),
		Source: path,
		Format: formatOf("", path),
	}
	if s.Format == domain.FormatMarkdown {
		s.Title = firstHeading(s.Body)
	}
	if s.Title == "" {
		base := filepath.Base(path)
		s.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// IsSlideFile reports whether name has a slide extension
func IsSlideFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".txt":
		return true
	}
	return false
}

func formatOf(declared, path string) domain.Format {
	switch declared {
	case "markdown":
		return domain.FormatMarkdown
	case "text":
		return domain.FormatText
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return domain.FormatMarkdown
	}
	return domain.FormatText
}

func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}
