package main

import (
	"github.com/spf13/cobra"

	"github.com/arclabs/arcui/internal/config"
	"github.com/arclabs/arcui/internal/logger"
)

type rootFlags struct {
	verbose bool
	palette string
}

// loadPalette resolves the --palette flag into an override set; an empty
// flag means no overrides.
func (f *rootFlags) loadPalette() (*config.Palette, error) {
	if f.palette == "" {
		return nil, nil
	}
	return config.LoadPalette(f.palette)
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "arcui",
		Short:         "arcui renders thematic artwork in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the gallery
			if len(args) == 0 {
				return runGallery(flags, log)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.palette, "palette", "", "Path to a palette override file")

	cmd.AddCommand(newGalleryCmd(flags, log))
	cmd.AddCommand(newRenderCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
