package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arclabs/arcui/internal/logger"
	"github.com/arclabs/arcui/internal/tui/gallery"
)

func newGalleryCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse every artwork style interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags, log)
		},
	}

	return cmd
}

func runGallery(flags *rootFlags, log *logger.Logger) error {
	palette, err := flags.loadPalette()
	if err != nil {
		log.WithComponent("gallery").Error(err, "palette load failed")
		return err
	}

	log.WithComponent("gallery").Info("launching gallery")

	program := tea.NewProgram(gallery.NewModel(palette), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("gallery failed: %w", err)
	}
	return nil
}
