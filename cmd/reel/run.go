package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"

	"reel/internal/domain"
	"reel/internal/eventbus"
	"reel/internal/observe"
	"reel/internal/slider"
	"reel/internal/timer"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Cycle through the deck without a UI, printing each slide change",
	Long: `Drives the carousel headless: auto-play and file watching work as in play,
and every committed change is printed as "<position>/<count> <title>".`,
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().Duration("for", 0, "Stop after this long (default: until interrupted)")
	runCmd.Flags().String("go", "", `Slide to show first: "start", "end" or a position counted from 1`)
	rootCmd.AddCommand(runCmd)
}

// headlessStage is the deck as seen by a slider with no screen
type headlessStage struct {
	deck *domain.Deck
}

func (s *headlessStage) Items() int { return s.deck.Len() }

func runHeadless(cmd *cobra.Command, args []string) error {
	forDur, _ := cmd.Flags().GetDuration("for")
	goFlag, _ := cmd.Flags().GetString("go")

	var first slider.Request
	if goFlag != "" {
		r, err := slider.ParsePosition(goFlag)
		if err != nil {
			return err
		}
		first = r
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	defer capitan.Shutdown()
	observe.Log(a.log)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if forDur > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, forDur)
		defer stop()
	}

	out := cmd.OutOrStdout()
	stage := &headlessStage{deck: a.deck}
	queue := timer.New(nil)

	opts := a.cfg.Slider.Options()
	opts.Logger = a.log
	opts.OnChange = func(e slider.ChangeEvent) {
		printSlide(out, stage.deck, e.Index)
	}
	c, err := slider.New(stage, queue, opts)
	if err != nil {
		return err
	}
	detach := observe.Attach(ctx, c)

	c.Render()
	printSlide(out, stage.deck, c.Index())
	if goFlag != "" {
		c.Go(first)
	}

	// Everything that touches the slider runs on the queue's goroutine
	calls := make(chan func())
	if a.cfg.Watch {
		a.bus.Subscribe(eventbus.EventDeckLoaded, func(e eventbus.DomainEvent) {
			event, ok := e.(eventbus.DeckLoadedEvent)
			if !ok || event.Deck == nil {
				return
			}
			apply := func() {
				if c.Disposed() {
					return
				}
				stage.deck = event.Deck
				c.Refresh()
				observe.Reloaded(ctx, event.Deck.Name, event.Deck.Len(), event.Path, nil)
				fmt.Fprintf(out, "reloaded %d slides\n", event.Deck.Len())
				printSlide(out, event.Deck, c.Index())
			}
			select {
			case calls <- apply:
			case <-ctx.Done():
			}
		})
		a.reloadOnChange(ctx)

		w := a.watcher()
		go func() {
			if err := w.Run(ctx); err != nil {
				a.log.Error("deck watcher stopped", "err", err)
			}
		}()
	}

	a.log.Info("running headless", "slides", a.deck.Len(), "auto", opts.Auto, "for", forDur)
	err = queue.Run(ctx, calls)

	detach()
	index := c.Index()
	c.Dispose()
	observe.Disposed(ctx, index)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func printSlide(w io.Writer, d *domain.Deck, i int) {
	s, ok := d.At(i)
	if !ok {
		fmt.Fprintln(w, "0/0 (no slides)")
		return
	}
	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(w, "%d/%d %s\n", i+1, d.Len(), title)
}
