package chart

import (
	"fmt"
	"math"
)

const (
	// InitialAngle is 12 o'clock. Angles are degrees, clockwise, 0 at 3 o'clock.
	InitialAngle = -90.0

	// maxSeamSweep caps the seam correction arc.
	maxSeamSweep = 1.0
)

// OpKind identifies a draw operation.
type OpKind int

const (
	OpCircle OpKind = iota
	OpArc
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpCircle:
		return "circle"
	case OpArc:
		return "arc"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one draw call in angle space. Start and Sweep are only meaningful
// for arcs, Text only for text.
type Op struct {
	Kind  OpKind  `json:"kind"`
	Slot  int     `json:"slot"`
	Start float64 `json:"start,omitempty"`
	Sweep float64 `json:"sweep,omitempty"`
	Color Color   `json:"color"`
	Text  string  `json:"text,omitempty"`
}

// Frame is the result of a layout pass.
type Frame struct {
	Ops      []Op
	Label    string
	EndAngle float64
}

// LayoutInput is everything a layout pass depends on.
type LayoutInput struct {
	Normalized Normalized
	FirstArc   FirstArc
	Palette    Palette
	Progress   float64
	Filling    int
	Rotate     bool
}

// Layout converts proportions into the ordered draw calls for one frame:
// background circle, per-slot filled and remainder arcs, the seam
// correction arc, then the label.
func Layout(in LayoutInput) Frame {
	progress := clampUnit(in.Progress)
	fill := float64(ClampFilling(in.Filling)) / 100

	origin := InitialAngle
	if in.Rotate {
		origin += 360 * progress
	}

	ops := make([]Op, 0, 2*Slots+3)
	ops = append(ops, Op{Kind: OpCircle, Slot: -1, Color: Transparent})

	start := origin
	for i, proportion := range in.Normalized {
		full := 360 * proportion
		sweep := full * progress
		filled := sweep * fill
		remainder := sweep - filled

		if filled > 0 {
			ops = append(ops, Op{Kind: OpArc, Slot: i, Start: start, Sweep: filled, Color: in.Palette[i]})
		}
		if remainder > 0 {
			ops = append(ops, Op{Kind: OpArc, Slot: i, Start: start + filled, Sweep: remainder, Color: Transparent})
		}
		start += full
	}
	end := start

	if seam := SeamSweep(in.FirstArc) * progress * fill; seam > 0 {
		ops = append(ops, Op{Kind: OpArc, Slot: -1, Start: origin, Sweep: seam, Color: in.FirstArc.Color})
	}

	label := FormatLabel(in.Normalized)
	ops = append(ops, Op{Kind: OpText, Slot: -1, Text: label})

	return Frame{Ops: ops, Label: label, EndAngle: end}
}

// SeamSweep is the unscaled sweep of the arc repainted over the seam where
// the last segment's round cap overlaps the first one.
func SeamSweep(memo FirstArc) float64 {
	if memo.Value <= 0 {
		return 0
	}
	return math.Min(maxSeamSweep, 360*0.5*memo.Value)
}

// FormatLabel renders the filled proportion as a percentage.
func FormatLabel(n Normalized) string {
	return fmt.Sprintf("%.2f%%", n.Filled()*100)
}

// ClampFilling limits a filling level to [0, 100].
func ClampFilling(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
