package artwork

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderLayersIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, typ := range All() {
		first := RenderLayers(typ, 128)
		second := RenderLayers(typ, 128)
		require.Equal(t, first, second, "%s", typ)
		require.False(t, first.Empty(), "%s must produce elements", typ)
	}
}

func TestRenderLayersDegenerateDimension(t *testing.T) {
	t.Parallel()

	for _, typ := range All() {
		require.True(t, RenderLayers(typ, 0).Empty(), "%s at dimension 0", typ)
		require.True(t, RenderLayers(typ, -10).Empty(), "%s at negative dimension", typ)
	}
}

func collectElements(l Layers) []Element {
	all := make([]Element, 0, len(l.Background)+len(l.Decoration)+len(l.Overlay))
	all = append(all, l.Background...)
	all = append(all, l.Decoration...)
	all = append(all, l.Overlay...)
	return all
}

func TestRenderLayersResolutionIndependence(t *testing.T) {
	t.Parallel()

	const d1, d2 = 100.0, 200.0

	for _, typ := range All() {
		small := collectElements(RenderLayers(typ, d1))
		large := collectElements(RenderLayers(typ, d2))
		require.Len(t, large, len(small), "%s element count must not depend on dimension", typ)

		for i := range small {
			require.InDelta(t, small[i].Offset.X/d1, large[i].Offset.X/d2, 1e-9, "%s element %d offset x", typ, i)
			require.InDelta(t, small[i].Offset.Y/d1, large[i].Offset.Y/d2, 1e-9, "%s element %d offset y", typ, i)
			require.InDelta(t, small[i].Size.W/d1, large[i].Size.W/d2, 1e-9, "%s element %d width", typ, i)
			require.InDelta(t, small[i].Size.H/d1, large[i].Size.H/d2, 1e-9, "%s element %d height", typ, i)
			require.Equal(t, small[i].Rotation, large[i].Rotation, "%s element %d rotation", typ, i)
			require.Equal(t, small[i].Fill, large[i].Fill, "%s element %d fill", typ, i)
		}
	}
}

func TestPizzaScenario(t *testing.T) {
	t.Parallel()

	const d = 64.0
	theme, cfg := Resolve(Pizza)
	layers := RenderLayers(Pizza, d)

	t.Run("clip is a circle", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, ShapeCircle, cfg.Base)
		require.Equal(t, 1.0, cfg.AspectRatio)
	})

	t.Run("background is a radial gradient from primary", func(t *testing.T) {
		t.Parallel()
		require.NotEmpty(t, layers.Background)
		base := layers.Background[0]
		require.Equal(t, KindCircle, base.Shape)
		require.Equal(t, FillRadial, base.Fill.Kind)
		require.Equal(t, theme.Primary, base.Fill.Stops[0].Color)
		require.Equal(t, Size{d, d}, base.Size)
	})

	t.Run("six crust bumps at sixty degree spacing", func(t *testing.T) {
		t.Parallel()
		bumps := layers.Decoration[:pizzaCrustBumps]

		angles := make([]float64, 0, len(bumps))
		for _, b := range bumps {
			require.Equal(t, KindCircle, b.Shape)
			require.Equal(t, Solid(theme.Secondary), b.Fill)
			radius := math.Hypot(b.Offset.X, b.Offset.Y)
			require.InDelta(t, 0.46*d, radius, 1e-9)
			angles = append(angles, math.Atan2(b.Offset.Y, b.Offset.X)*180/math.Pi)
		}
		for i := 1; i < len(angles); i++ {
			diff := math.Mod(angles[i]-angles[i-1]+360, 360)
			require.InDelta(t, 60, diff, 1e-9)
		}
	})

	t.Run("toppings alternate accent colors", func(t *testing.T) {
		t.Parallel()
		toppings := layers.Decoration[pizzaCrustBumps : pizzaCrustBumps+pizzaPepperoni]
		for i, p := range toppings {
			want := theme.Accents[0]
			if i%2 == 1 {
				want = theme.Accents[2]
			}
			require.Equal(t, Solid(want), p.Fill, "topping %d", i)
		}
	})

	t.Run("overlay is a subtle bordered vignette", func(t *testing.T) {
		t.Parallel()
		require.Len(t, layers.Overlay, 2)
		ringEl := layers.Overlay[0]
		require.Greater(t, ringEl.Stroke, 0.0)
		require.LessOrEqual(t, ringEl.Opacity, 0.3)
		require.Equal(t, BlendMultiply, layers.Overlay[1].Blend)
	})
}

func TestNoirScenario(t *testing.T) {
	t.Parallel()

	const d = 100.0
	theme, cfg := Resolve(Noir)
	layers := RenderLayers(Noir, d)

	require.Equal(t, ShapeRoundedRect, cfg.Base)
	require.InDelta(t, 0.65, cfg.AspectRatio, 1e-9)

	lines := 0
	blurredAccents := 0
	for _, el := range layers.Decoration {
		if el.Shape == KindLine {
			lines++
		}
		if el.Shape == KindCircle && el.Blur > 0 && reflect.DeepEqual(el.Fill, Solid(theme.Accents[1])) {
			blurredAccents++
		}
	}
	require.GreaterOrEqual(t, lines, 3, "noir cover needs its title bars")
	require.Equal(t, 1, blurredAccents, "noir cover has exactly one street lamp")
}

func TestRenderLayersWithMissingAccentsFallsBack(t *testing.T) {
	t.Parallel()

	for _, typ := range All() {
		typ := typ
		t.Run(typ.String(), func(t *testing.T) {
			t.Parallel()
			theme, _ := Resolve(typ)
			theme.Accents = nil

			var layers Layers
			require.NotPanics(t, func() {
				layers = RenderLayersWith(typ, theme, 80)
			})
			require.False(t, layers.Empty())
		})
	}

	t.Run("pizza toppings use the documented literal fallback", func(t *testing.T) {
		t.Parallel()
		theme, _ := Resolve(Pizza)
		theme.Accents = nil

		layers := RenderLayersWith(Pizza, theme, 80)
		first := layers.Decoration[pizzaCrustBumps]
		require.Equal(t, Solid(hex(pepperoniFall)), first.Fill)
	})
}

func TestFillGradientEvaluation(t *testing.T) {
	t.Parallel()

	a, b := hex("#000000"), hex("#ffffff")
	fill := Linear(0, Stop{0, a}, Stop{1, b})

	require.Equal(t, a, fill.At(-0.5))
	require.Equal(t, b, fill.At(1.5))

	mid := fill.At(0.5)
	require.InDelta(t, 0.5, mid.R, 1e-9)
	require.InDelta(t, 0.5, mid.G, 1e-9)
	require.InDelta(t, 0.5, mid.B, 1e-9)
}
