package chart

import (
	"math/rand"
	"time"
)

const (
	// DefaultTextSize is the label size in surface pixels.
	DefaultTextSize = 20.0

	// DefaultLineWidth is the ring stroke width in surface pixels.
	DefaultLineWidth = 5.0

	// TextColor is used for the centered label.
	TextColor Color = 0xFF000000
)

// Options configures a StatsView. Zero values select the defaults.
type Options struct {
	TextSize  float64
	LineWidth float64
	// Colors holds up to four category colors; missing ones are random.
	Colors   []Color
	Duration time.Duration
	// Rotate spins the whole ring in while it is revealed.
	Rotate bool

	Rand  *rand.Rand
	Clock func() time.Time
	// OnInvalidate is called whenever the view needs to be redrawn. It may
	// be called several times before the host actually redraws.
	OnInvalidate func()
}

// StatsView is the animated ring chart. It is not safe for concurrent use;
// every method must be called from the host's UI goroutine.
type StatsView struct {
	textSize  float64
	lineWidth float64
	rotate    bool
	palette   Palette
	clock     func() time.Time
	onInval   func()

	hasData    bool
	normalized Normalized
	firstArc   FirstArc
	filling    int

	anim *Animator
	geom Geometry
}

// New creates a StatsView. The palette is fixed here.
func New(opts Options) *StatsView {
	if opts.TextSize <= 0 {
		opts.TextSize = DefaultTextSize
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = DefaultLineWidth
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &StatsView{
		textSize:  opts.TextSize,
		lineWidth: opts.LineWidth,
		rotate:    opts.Rotate,
		palette:   NewPalette(opts.Colors, opts.Rand),
		clock:     opts.Clock,
		onInval:   opts.OnInvalidate,
		firstArc:  FirstArc{Color: Transparent},
		filling:   100,
		anim:      NewAnimator(opts.Duration, EaseLinear),
	}
}

// SetData replaces the weights. It recomputes the proportions, restarts the
// reveal animation from 0 (cancelling any run in flight) and requests a
// redraw. The returned RunID is what the host must pass to Tick.
func (v *StatsView) SetData(weights []float64) RunID {
	v.normalized, v.firstArc = Normalize(weights, v.palette)
	v.hasData = true
	run := v.anim.Start(v.clock())
	v.invalidate()
	return run
}

// SetFilling stores the filling level clamped to [0,100] and requests a
// redraw. It never restarts the animation.
func (v *StatsView) SetFilling(level int) {
	v.filling = ClampFilling(level)
	v.invalidate()
}

// Resize recomputes the geometry for a w×h surface.
func (v *StatsView) Resize(w, h int) {
	v.geom = NewGeometry(w, h, v.lineWidth)
	v.invalidate()
}

// Tick advances the animation run and requests a redraw when progress
// moved. It reports whether another tick should be scheduled.
func (v *StatsView) Tick(run RunID) bool {
	if run != v.anim.Run() || !v.anim.Running() {
		return false
	}
	more := v.anim.Tick(run, v.clock())
	v.invalidate()
	return more
}

// Cancel stops the reveal animation where it is.
func (v *StatsView) Cancel() {
	v.anim.Cancel()
}

// Frame lays out the current state. ok is false until data has been set.
func (v *StatsView) Frame() (f Frame, ok bool) {
	if !v.hasData {
		return Frame{}, false
	}
	return Layout(LayoutInput{
		Normalized: v.normalized,
		FirstArc:   v.firstArc,
		Palette:    v.palette,
		Progress:   v.anim.Progress(),
		Filling:    v.filling,
		Rotate:     v.rotate,
	}), true
}

// Draw replays the current frame onto c using the cached geometry.
func (v *StatsView) Draw(c Canvas) {
	frame, ok := v.Frame()
	if !ok || v.geom.Empty() {
		return
	}

	stroke := Stroke{Width: v.lineWidth, RoundCap: true}
	for _, op := range frame.Ops {
		switch op.Kind {
		case OpCircle:
			stroke.Color = op.Color
			c.DrawCircle(v.geom.Center, v.geom.Radius, stroke)
		case OpArc:
			stroke.Color = op.Color
			c.DrawArc(v.geom.Oval, op.Start, op.Sweep, stroke)
		case OpText:
			anchor := Point{X: v.geom.Center.X, Y: v.geom.Center.Y + v.textSize/4}
			c.DrawText(op.Text, anchor, TextStyle{Color: TextColor, Size: v.textSize})
		}
	}
}

func (v *StatsView) invalidate() {
	if v.onInval != nil {
		v.onInval()
	}
}

// Progress returns the reveal progress in [0,1].
func (v *StatsView) Progress() float64 { return v.anim.Progress() }

// Run returns the current animation run id.
func (v *StatsView) Run() RunID { return v.anim.Run() }

// Animating reports whether a reveal run is in flight.
func (v *StatsView) Animating() bool { return v.anim.Running() }

// Filling returns the stored filling level.
func (v *StatsView) Filling() int { return v.filling }

// Normalized returns the current proportions.
func (v *StatsView) Normalized() Normalized { return v.normalized }

// FirstArc returns the seam memo for the current data.
func (v *StatsView) FirstArc() FirstArc { return v.firstArc }

// Palette returns the fixed palette.
func (v *StatsView) Palette() Palette { return v.palette }

// Geometry returns the cached geometry.
func (v *StatsView) Geometry() Geometry { return v.geom }

// TextSize returns the label size.
func (v *StatsView) TextSize() float64 { return v.textSize }

// LineWidth returns the stroke width.
func (v *StatsView) LineWidth() float64 { return v.lineWidth }
