package artwork

import (
	"math"
	"time"
)

// AnimKind selects the looping transform applied to composed layers.
type AnimKind int

const (
	AnimSpin AnimKind = iota
	AnimPulse
	AnimShimmer
	AnimBreathe
)

func (k AnimKind) String() string {
	switch k {
	case AnimSpin:
		return "spin"
	case AnimPulse:
		return "pulse"
	case AnimShimmer:
		return "shimmer"
	case AnimBreathe:
		return "breathe"
	default:
		return "unknown"
	}
}

// ParseAnimKind converts a kind name into an AnimKind.
func ParseAnimKind(s string) (AnimKind, bool) {
	for _, k := range []AnimKind{AnimSpin, AnimPulse, AnimShimmer, AnimBreathe} {
		if s == k.String() {
			return k, true
		}
	}
	return AnimSpin, false
}

// DefaultPeriod returns the cycle duration a kind uses unless overridden.
// Breathe runs a deliberately longer cycle than pulse.
func (k AnimKind) DefaultPeriod() time.Duration {
	switch k {
	case AnimSpin:
		return 1200 * time.Millisecond
	case AnimPulse:
		return 1600 * time.Millisecond
	case AnimShimmer:
		return 2 * time.Second
	case AnimBreathe:
		return 3200 * time.Millisecond
	default:
		return time.Second
	}
}

// Transform is the geometric/visual adjustment one animation frame applies to
// the composed layers. The zero progress of every kind maps to Rest().
type Transform struct {
	Rotation float64 // degrees
	Scale    float64
	Opacity  float64
	Shimmer  float64 // normalized highlight band position; <0 disables the band
}

// Rest is the identity transform shown whenever animation is inactive.
func Rest() Transform {
	return Transform{Rotation: 0, Scale: 1, Opacity: 1, Shimmer: -1}
}

// Progress converts a wall-clock instant into a cyclic position in [0, 1).
// All instances sampling the same clock share the same phase, which is what
// keeps concurrently rendered artworks of one style in sync without any
// coordination.
func Progress(now time.Time, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	p := float64(now.UnixNano()%period.Nanoseconds()) / float64(period.Nanoseconds())
	if p < 0 {
		p += 1
	}
	return p
}

// TransformAt maps (kind, progress) to a frame transform. Inactive or
// reduce-motion input short-circuits to Rest before any per-kind math runs;
// reduce-motion consumers must check this before starting a loop, not merely
// freeze the output afterwards.
func TransformAt(kind AnimKind, active, reduceMotion bool, progress float64) Transform {
	if !active || reduceMotion {
		return Rest()
	}

	tr := Rest()
	wave := math.Sin(2 * math.Pi * progress)

	switch kind {
	case AnimSpin:
		tr.Rotation = progress * 360
	case AnimPulse:
		tr.Scale = 1 + 0.06*wave
	case AnimShimmer:
		tr.Shimmer = progress
	case AnimBreathe:
		tr.Scale = 1 + 0.03*wave
		tr.Opacity = 0.9 + 0.05*(1+wave)
	}
	return tr
}

// Driver owns the animation lifecycle for one artwork instance. It samples
// wall-clock time rather than accumulating per-frame state, so a stopped and
// restarted driver is phase-deterministic and two drivers with equal periods
// stay synchronized. Not safe for concurrent use; the render loop is assumed
// to be single threaded.
type Driver struct {
	Kind         AnimKind
	Period       time.Duration
	ReduceMotion bool

	now     func() time.Time
	running bool
}

// NewDriver creates a driver for the given kind using its default period.
func NewDriver(kind AnimKind) *Driver {
	return &Driver{
		Kind:   kind,
		Period: kind.DefaultPeriod(),
		now:    time.Now,
	}
}

// WithPeriod overrides the cycle duration.
func (d *Driver) WithPeriod(period time.Duration) *Driver {
	if period > 0 {
		d.Period = period
	}
	return d
}

// WithClock substitutes the time source; tests use a fixed clock.
func (d *Driver) WithClock(now func() time.Time) *Driver {
	if now != nil {
		d.now = now
	}
	return d
}

// Start begins animating. A reduce-motion driver refuses to start: the check
// happens here, before any loop exists.
func (d *Driver) Start() {
	if d.ReduceMotion {
		return
	}
	d.running = true
}

// Stop halts animation immediately and returns the driver to its rest state,
// guaranteeing that a later Start resumes from a defined phase.
func (d *Driver) Stop() {
	d.running = false
}

// Running reports whether the driver is animating.
func (d *Driver) Running() bool {
	return d.running
}

// Progress returns the current cyclic position, or 0 when stopped.
func (d *Driver) Progress() float64 {
	if !d.running {
		return 0
	}
	return Progress(d.now(), d.Period)
}

// Frame returns the transform for the current instant.
func (d *Driver) Frame() Transform {
	return TransformAt(d.Kind, d.running, d.ReduceMotion, d.Progress())
}
