package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"reel/internal/config"
	"reel/internal/deck"
	"reel/internal/logging"
	"reel/internal/slider/anim"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and list the slides it produces",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	dirFlag, _ := cmd.Flags().GetString("dir")
	configFlag, _ := cmd.Flags().GetString("config")

	dir, err := filepath.Abs(dirFlag)
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}
	path := config.Resolve(configFlag, dir)

	out := cmd.OutOrStdout()
	svc := config.NewConfigService(path)
	cfg, err := svc.Load()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		fmt.Fprintf(out, "config:    %s (not found, using defaults)\n", path)
	} else {
		fmt.Fprintf(out, "config:    %s\n", path)
	}
	if cfg.SlidesDir == "" && len(cfg.Slides) == 0 {
		cfg.SlidesDir = dir
	}

	s := cfg.Slider
	animation := s.Animation.Name
	if s.Animation.Easing != "" {
		animation += ", " + s.Animation.Easing
	}
	fmt.Fprintf(out, "animation: %s (%s); available: %s\n", animation, s.Animation.Interval.Std(), strings.Join(anim.Names(), ", "))

	autoPlay := "off"
	if s.Auto {
		autoPlay = "every " + s.AutoInterval.Std().String()
	}
	fmt.Fprintf(out, "auto-play: %s, circular: %t, disabled: %t\n", autoPlay, s.Circle, s.Disabled)

	d, err := deck.NewLoader(logging.NewNop()).Load(cfg)
	if err != nil {
		return fmt.Errorf("failed to load slides: %w", err)
	}
	fmt.Fprintf(out, "slides:    %d\n", d.Len())
	for i, slide := range d.Slides {
		title := slide.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(out, "  %2d. %s [%s]\n", i+1, title, slide.Format)
	}
	return nil
}
