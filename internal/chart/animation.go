package chart

import "time"

const (
	// DefaultDuration is how long a reveal run takes.
	DefaultDuration = 3 * time.Second

	// TransitionDuration is used for the host's layout transition.
	TransitionDuration = 2 * time.Second

	// FrameInterval is the tick cadence hosts should schedule at.
	FrameInterval = time.Second / 60
)

// Easing maps linear time in [0,1] to an animated value. StatsView reveals
// always run EaseLinear; EaseBounce is only for host layout transitions.
type Easing string

const (
	EaseLinear Easing = "linear"
	EaseBounce Easing = "bounce"
)

// Apply evaluates the easing curve at t. t is clamped to [0,1] and the
// curve always ends at exactly 1.
func (e Easing) Apply(t float64) float64 {
	t = clampUnit(t)
	if t == 1 {
		return 1
	}
	switch e {
	case EaseBounce:
		return bounce(t)
	default:
		return t
	}
}

// bounce follows the classic four-hop bounce-out curve.
func bounce(t float64) float64 {
	hop := func(x float64) float64 { return x * x * 8 }

	t *= 1.1226
	switch {
	case t < 0.3535:
		return hop(t)
	case t < 0.7408:
		return hop(t-0.54719) + 0.7
	case t < 0.9644:
		return hop(t-0.8526) + 0.9
	default:
		return hop(t-1.0435) + 0.95
	}
}

// RunID identifies one animation run. Ticks carrying an older RunID are
// stale and must be dropped.
type RunID int

// AnimState is the animator state.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRunning
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "Idle"
	case AnimRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Animator advances a progress value from 0 to 1 over a fixed duration.
// It owns no timer: the host schedules ticks and passes the current time
// in, so all mutation stays on the caller's goroutine.
type Animator struct {
	duration time.Duration
	easing   Easing

	state    AnimState
	run      RunID
	started  time.Time
	linear   float64
	progress float64
}

// NewAnimator creates an idle animator. A non-positive duration falls back
// to DefaultDuration.
func NewAnimator(duration time.Duration, easing Easing) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if easing == "" {
		easing = EaseLinear
	}
	return &Animator{duration: duration, easing: easing}
}

// Start cancels any in-flight run and begins a new one at progress 0.
func (a *Animator) Start(now time.Time) RunID {
	a.Cancel()
	a.run++
	a.state = AnimRunning
	a.started = now
	a.linear = 0
	a.progress = 0
	return a.run
}

// Cancel detaches the current run. Ticks for it are ignored from now on.
// Progress keeps its last value.
func (a *Animator) Cancel() {
	if a.state != AnimRunning {
		return
	}
	a.state = AnimIdle
	a.run++
}

// Tick advances the run identified by run. It reports whether the host
// should schedule another tick; stale or finished runs return false and
// leave progress untouched.
func (a *Animator) Tick(run RunID, now time.Time) bool {
	if a.state != AnimRunning || run != a.run {
		return false
	}

	t := float64(now.Sub(a.started)) / float64(a.duration)
	t = clampUnit(t)
	// Time never runs backwards within a run.
	if t < a.linear {
		t = a.linear
	}
	a.linear = t
	a.progress = a.easing.Apply(t)

	if t >= 1 {
		a.progress = 1
		a.state = AnimIdle
		return false
	}
	return true
}

// Progress returns the current eased value.
func (a *Animator) Progress() float64 { return a.progress }

// Run returns the id of the latest run.
func (a *Animator) Run() RunID { return a.run }

// State returns Idle or Running.
func (a *Animator) State() AnimState { return a.state }

// Running reports whether a run is in flight.
func (a *Animator) Running() bool { return a.state == AnimRunning }

// Duration returns the run length.
func (a *Animator) Duration() time.Duration { return a.duration }
