package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"

	"reel/internal/deck"
	"reel/internal/eventbus"
	"reel/internal/observe"
	"reel/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Show the deck in the terminal",
	Long: `Opens the carousel full screen. Slides advance on their own when auto-play
is on; hovering the stage holds the current slide.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().String("style", "dark", "Markdown style: dark, light, notty, ...")
	playCmd.Flags().Bool("no-mouse", false, "Ignore the mouse")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	defer capitan.Shutdown()
	observe.Log(a.log)

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	style, _ := cmd.Flags().GetString("style")
	if noMouse, _ := cmd.Flags().GetBool("no-mouse"); noMouse {
		a.cfg.UI.Mouse = false
	}

	model, err := ui.NewModel(a.cfg, a.deck, a.bus,
		ui.WithLogger(a.log),
		ui.WithContext(ctx),
		ui.WithRenderer(deck.NewRenderer(style)),
	)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if a.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Forward events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	a.bus.Subscribe(eventbus.EventDeckLoaded, forward)
	a.bus.Subscribe(eventbus.EventError, forward)

	if a.cfg.Watch {
		a.reloadOnChange(ctx)
		w := a.watcher()
		go func() {
			if err := w.Run(ctx); err != nil {
				a.log.Error("deck watcher stopped", "err", err)
				a.bus.Publish(eventbus.ErrorEvent{Message: "Not watching slides", Err: err})
			}
		}()
	}

	a.log.Info("starting UI", "slides", a.deck.Len())
	_, err = p.Run()
	model.Close()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	a.log.Info("UI exited normally")
	return nil
}
