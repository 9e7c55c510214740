package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/arclabs/arcui/internal/artwork"
	"github.com/arclabs/arcui/internal/rasterizer"
)

// Frame cadence of the animation loop. Terminal artwork does not benefit
// from more than ~12 updates per second.
const (
	tickInterval = 80 * time.Millisecond
	tickFPS      = 12
)

// TickMsg advances every animating artwork view in a program.
type TickMsg time.Time

// Tick schedules the next animation frame.
func Tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ArtworkView composes the resolved theme, shape configuration, layer
// renderer and animation driver into one renderable unit. It is a value
// model in the bubbletea style: Update returns the next state, and the With*
// builders copy the driver so derived views never alias the receiver's
// animation state.
type ArtworkView struct {
	typ    artwork.Type
	theme  artwork.Theme
	cfg    artwork.ShapeConfig
	driver *artwork.Driver

	// Dimension changes are eased through a spring so resizes do not snap.
	spring    harmonica.Spring
	dim       float64
	dimVel    float64
	targetDim float64
}

// NewArtworkView resolves the artwork type into a view with its recommended
// configuration, not yet animating.
func NewArtworkView(typ artwork.Type, dimension int) ArtworkView {
	theme, cfg := artwork.Resolve(typ)
	return ArtworkView{
		typ:       typ,
		theme:     theme,
		cfg:       cfg,
		driver:    artwork.NewDriver(artwork.AnimSpin),
		spring:    harmonica.NewSpring(harmonica.FPS(tickFPS), 7.0, 0.6),
		dim:       float64(dimension),
		targetDim: float64(dimension),
	}
}

// WithConfig overrides the recommended shape configuration; the explicit
// value wins over the resolver default.
func (v ArtworkView) WithConfig(cfg artwork.ShapeConfig) ArtworkView {
	if cfg.Valid() {
		v.cfg = cfg
	}
	return v
}

// WithTheme overrides the resolved theme (palette override files use this).
func (v ArtworkView) WithTheme(theme artwork.Theme) ArtworkView {
	v.theme = theme
	return v
}

// WithKind selects the animation kind. An explicitly overridden period
// carries over; otherwise the new kind runs at its own default period.
func (v ArtworkView) WithKind(kind artwork.AnimKind) ArtworkView {
	prev := v.driver
	d := artwork.NewDriver(kind)
	d.ReduceMotion = prev.ReduceMotion
	if prev.Period != prev.Kind.DefaultPeriod() {
		d.WithPeriod(prev.Period)
	}
	if prev.Running() {
		d.Start()
	}
	v.driver = d
	return v
}

// WithPeriod overrides the animation cycle duration.
func (v ArtworkView) WithPeriod(period time.Duration) ArtworkView {
	d := *v.driver
	d.WithPeriod(period)
	v.driver = &d
	return v
}

// WithReduceMotion threads the host's reduce-motion flag into the driver.
// When set, animation degrades to the static rest frame and loops never
// start.
func (v ArtworkView) WithReduceMotion(reduce bool) ArtworkView {
	d := *v.driver
	d.ReduceMotion = reduce
	if reduce {
		d.Stop()
	}
	v.driver = &d
	return v
}

// WithAnimating sets the desired animation state.
func (v ArtworkView) WithAnimating(animating bool) ArtworkView {
	d := *v.driver
	if animating {
		d.Start()
	} else {
		d.Stop()
	}
	v.driver = &d
	return v
}

// Type returns the artwork type this view renders.
func (v ArtworkView) Type() artwork.Type {
	return v.typ
}

// Kind returns the current animation kind.
func (v ArtworkView) Kind() artwork.AnimKind {
	return v.driver.Kind
}

// Period returns the current animation cycle duration.
func (v ArtworkView) Period() time.Duration {
	return v.driver.Period
}

// Animating reports whether the view's loop is running. Reduce motion makes
// this false regardless of the requested state.
func (v ArtworkView) Animating() bool {
	return v.driver.Running()
}

// Progress exposes the driver's cyclic position, 0 when idle.
func (v ArtworkView) Progress() float64 {
	return v.driver.Progress()
}

// SetDimension retargets the spring toward a new artwork dimension.
func (v ArtworkView) SetDimension(dimension int) ArtworkView {
	if dimension > 0 {
		v.targetDim = float64(dimension)
	}
	return v
}

// Init starts the animation loop when the view was constructed animating.
func (v ArtworkView) Init() tea.Cmd {
	if v.driver.Running() {
		return Tick()
	}
	return nil
}

// Update advances the view on animation ticks. The loop keeps running while
// the driver is active or the size spring is still settling.
func (v ArtworkView) Update(msg tea.Msg) (ArtworkView, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok {
		return v, nil
	}

	v.dim, v.dimVel = v.spring.Update(v.dim, v.dimVel, v.targetDim)

	if v.driver.Running() || !v.settled() {
		return v, Tick()
	}
	return v, nil
}

func (v ArtworkView) settled() bool {
	const eps = 0.5
	return v.dim-v.targetDim < eps && v.targetDim-v.dim < eps
}

// View rasterizes the current frame and renders it as terminal cells.
func (v ArtworkView) View() string {
	dim := int(v.dim + 0.5)
	if dim <= 0 {
		return ""
	}

	img := rasterizer.Render(rasterizer.Options{
		Layers:    artwork.RenderLayersWith(v.typ, v.theme, float64(dim)),
		Config:    v.cfg,
		Transform: v.driver.Frame(),
		Dimension: dim,
		Shadow:    v.theme.Shadow,
	})
	return BlocksView(img)
}
