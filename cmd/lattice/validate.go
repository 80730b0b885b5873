package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lattice/internal/scene"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scene.yaml>",
	Short: "Check a scene file for consistency",
	Long:  `Parses the scene, validates its dimensions and verifies that every placement lands inside the grid.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scene is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}

	// Building exercises the same checked writes the renderer relies on.
	if _, err := s.Build(); err != nil {
		return err
	}
	return nil
}
