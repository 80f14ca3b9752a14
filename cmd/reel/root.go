package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reel",
	Short: "reel cycles through a deck of slides in your terminal",
	Long: `reel shows an ordered deck of slides inside a bordered stage and moves
between them on a timer or on demand: arrow keys, number keys, or clicks on
the prev/next buttons and the index markers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory to look for .reel.toml and slides in")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: ./.reel.toml, then the user config)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file (default: reel.log)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}
