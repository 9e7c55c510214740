package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/term"

	"github.com/arclabs/arcui/internal/artwork"
	"github.com/arclabs/arcui/internal/logger"
	"github.com/arclabs/arcui/internal/rasterizer"
	"github.com/arclabs/arcui/internal/tui"
	arcerrors "github.com/arclabs/arcui/pkg/errors"
)

type renderFlags struct {
	size     int
	out      string
	scale    int
	kind     string
	progress float64
}

func newRenderCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	rf := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <type>",
		Short: "Render one artwork to the terminal or a PNG file",
		Long: `Render a single artwork frame. Types are category/style identifiers
("food/pizza", "book/noir") or bare style names ("pizza").

Without --out the artwork prints to the terminal, sized to fit. With --out
it is written as a PNG, optionally upscaled with --scale.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags, rf, log)
		},
	}

	cmd.Flags().IntVar(&rf.size, "size", 0, "Artwork dimension in pixels (0 = fit terminal, 256 for files)")
	cmd.Flags().StringVar(&rf.out, "out", "", "Write a PNG to this path instead of printing")
	cmd.Flags().IntVar(&rf.scale, "scale", 1, "Integer upscale factor for file output")
	cmd.Flags().StringVar(&rf.kind, "kind", "", "Sample an animation frame of this kind (spin, pulse, shimmer, breathe)")
	cmd.Flags().Float64Var(&rf.progress, "progress", 0, "Animation cycle position in [0, 1)")

	return cmd
}

func runRender(cmd *cobra.Command, typeArg string, flags *rootFlags, rf *renderFlags, log *logger.Logger) error {
	typ, err := artwork.Parse(typeArg)
	if err != nil {
		return err
	}

	tr, err := frameTransform(rf)
	if err != nil {
		return err
	}

	palette, err := flags.loadPalette()
	if err != nil {
		return err
	}

	theme, cfg := artwork.Resolve(typ)
	theme = palette.Apply(typ, theme)

	dim := rf.size
	if dim <= 0 {
		if rf.out != "" {
			dim = 256
		} else {
			dim = terminalDimension()
		}
	}

	img := rasterizer.Render(rasterizer.Options{
		Layers:    artwork.RenderLayersWith(typ, theme, float64(dim)),
		Config:    cfg,
		Transform: tr,
		Dimension: dim,
		Shadow:    theme.Shadow,
	})

	if rf.out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), tui.BlocksView(img))
		return nil
	}

	log.WithComponent("render").WithFields(map[string]any{
		"type": typ.String(),
		"out":  rf.out,
	}).Info("writing artwork")

	return writePNG(img, rf.out, rf.scale)
}

// frameTransform maps the kind/progress flags to an animation frame; no kind
// means the rest frame.
func frameTransform(rf *renderFlags) (artwork.Transform, error) {
	if rf.kind == "" {
		return artwork.Rest(), nil
	}

	kind, ok := artwork.ParseAnimKind(rf.kind)
	if !ok {
		return artwork.Transform{}, fmt.Errorf("unknown animation kind %q", rf.kind)
	}
	if rf.progress < 0 || rf.progress >= 1 {
		return artwork.Transform{}, fmt.Errorf("progress %v outside [0, 1)", rf.progress)
	}
	return artwork.TransformAt(kind, true, false, rf.progress), nil
}

// terminalDimension sizes terminal output to the current window. Half-block
// rendering fits two pixel rows per cell.
func terminalDimension() int {
	const fallback = 40

	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallback
	}

	dim := (h - 2) * 2
	if w < dim {
		dim = w
	}
	if dim < 16 {
		dim = 16
	}
	return dim
}

func writePNG(img *image.RGBA, path string, scale int) error {
	var out image.Image = img
	if scale > 1 {
		b := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Over, nil)
		out = scaled
	}

	f, err := os.Create(path)
	if err != nil {
		return arcerrors.NewRenderError("export", err)
	}

	if err := png.Encode(f, out); err != nil {
		f.Close()
		return arcerrors.NewRenderError("encode", err)
	}
	return f.Close()
}
