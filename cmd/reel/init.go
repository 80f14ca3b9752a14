package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"reel/internal/config"
	"reel/internal/eventbus"
)

const saveConfirmTimeout = 2 * time.Second

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample .reel.toml",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dirFlag, _ := cmd.Flags().GetString("dir")
	configFlag, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")

	path := configFlag
	if path == "" {
		path = filepath.Join(dirFlag, config.FileName)
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	bus := eventbus.New(nil)
	defer bus.Close()
	saved := make(chan string, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			saved <- event.Path
		}
	})

	if err := config.NewConfigServiceWithBus(path, bus).Save(config.SampleConfig()); err != nil {
		return err
	}

	select {
	case written := <-saved:
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
	case <-time.After(saveConfirmTimeout):
		return fmt.Errorf("no confirmation that %s was saved", path)
	}
	return nil
}
