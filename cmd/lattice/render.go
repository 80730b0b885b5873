package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/lattice/internal/presentation/tui"
	"github.com/aretw0/lattice/internal/scene"
)

var renderCmd = &cobra.Command{
	Use:   "render <scene.yaml>",
	Short: "Draw a scene file as a grid",
	Long:  `Loads a YAML scene, builds the grid and draws it to the terminal, one colored glyph per occupied cell.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRender(cmd, args[0]); err != nil {
			fmt.Printf("Render failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, path string) error {
	logger := commandLogger(cmd)

	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("scene loaded", "name", s.Name, "width", s.Width, "height", s.Height, "cells", len(s.Cells))

	g, err := s.Build()
	if err != nil {
		return err
	}

	// Clamp wide grids to the terminal, but only when drawing to one.
	maxCols := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			maxCols = w
		}
	}

	if s.Name != "" {
		fmt.Printf("%s (%dx%d)\n", s.Name, g.Width(), g.Height())
	}
	return tui.RenderGrid(termenv.NewOutput(os.Stdout), g, maxCols)
}
