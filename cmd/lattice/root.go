package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lattice/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lattice inspects and renders fixed-size 2D grid scenes",
	Long:  `Lattice works with declarative YAML scene files describing a rectangular grid and its occupied cells.`,
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
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity (debug, info, warn, error)")
}

// commandLogger builds the logger for a command invocation from the
// persistent log-level flag.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return logging.New(slog.LevelInfo)
	}
	return logging.New(logging.ParseLevel(level))
}
