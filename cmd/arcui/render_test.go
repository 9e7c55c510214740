package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runRenderCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(testLogger(t))
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"render"}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestRenderCommandPrintsToTerminal(t *testing.T) {
	out, err := runRenderCommand(t, "pizza", "--size", "24")

	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestRenderCommandRejectsUnknownType(t *testing.T) {
	_, err := runRenderCommand(t, "burger")

	require.Error(t, err)
	require.Contains(t, err.Error(), "burger")
}

func TestRenderCommandRejectsUnknownKind(t *testing.T) {
	_, err := runRenderCommand(t, "pizza", "--kind", "wobble")

	require.Error(t, err)
}

func TestRenderCommandRejectsOutOfRangeProgress(t *testing.T) {
	_, err := runRenderCommand(t, "pizza", "--kind", "spin", "--progress", "1.5")

	require.Error(t, err)
}

func TestRenderCommandWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pizza.png")

	_, err := runRenderCommand(t, "pizza", "--size", "32", "--out", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())
}

func TestRenderCommandScalesFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noir.png")

	_, err := runRenderCommand(t, "book/noir", "--size", "20", "--scale", "3", "--out", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 60, img.Bounds().Dx())
}

func TestRenderCommandAppliesPaletteFile(t *testing.T) {
	palette := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(palette, []byte("styles:\n  pizza:\n    primary: \"#123456\"\n"), 0o644))

	out, err := runRenderCommand(t, "pizza", "--size", "24", "--palette", palette)

	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestRenderCommandRejectsBadPalette(t *testing.T) {
	palette := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(palette, []byte("styles:\n  pizza:\n    primary: \"red\"\n"), 0o644))

	_, err := runRenderCommand(t, "pizza", "--palette", palette)

	require.Error(t, err)
}
