package chart

import "math"

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in surface pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the rect width.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the rect height.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the rect center.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Stroke describes how arcs and circles are outlined.
type Stroke struct {
	Color    Color
	Width    float64
	RoundCap bool
}

// TextStyle describes how the label is drawn. Text is centered on the
// anchor horizontally; the anchor is the baseline.
type TextStyle struct {
	Color Color
	Size  float64
}

// Canvas receives draw calls. Implementations adapt them to a concrete
// surface such as an image or a terminal grid.
type Canvas interface {
	DrawCircle(center Point, radius float64, s Stroke)
	DrawArc(oval Rect, startAngle, sweepAngle float64, s Stroke)
	DrawText(text string, anchor Point, t TextStyle)
}

// Geometry is derived from the allocated size only.
type Geometry struct {
	Radius float64
	Center Point
	Oval   Rect
}

// NewGeometry fits the ring inside a w×h surface, inset by the stroke width.
func NewGeometry(w, h int, lineWidth float64) Geometry {
	radius := math.Min(float64(w), float64(h))/2 - lineWidth
	center := Point{X: float64(w) / 2, Y: float64(h) / 2}
	return Geometry{
		Radius: radius,
		Center: center,
		Oval: Rect{
			Left:   center.X - radius,
			Top:    center.Y - radius,
			Right:  center.X + radius,
			Bottom: center.Y + radius,
		},
	}
}

// Empty reports whether there is no room to draw.
func (g Geometry) Empty() bool { return g.Radius <= 0 }

// CallKind identifies a recorded canvas call.
type CallKind = OpKind

// Call is one recorded canvas invocation.
type Call struct {
	Kind   CallKind
	Center Point
	Radius float64
	Oval   Rect
	Start  float64
	Sweep  float64
	Text   string
	Stroke Stroke
	Style  TextStyle
}

// Recorder is a Canvas that keeps every call in order.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) DrawCircle(center Point, radius float64, s Stroke) {
	r.Calls = append(r.Calls, Call{Kind: OpCircle, Center: center, Radius: radius, Stroke: s})
}

func (r *Recorder) DrawArc(oval Rect, startAngle, sweepAngle float64, s Stroke) {
	r.Calls = append(r.Calls, Call{Kind: OpArc, Oval: oval, Start: startAngle, Sweep: sweepAngle, Stroke: s})
}

func (r *Recorder) DrawText(text string, anchor Point, t TextStyle) {
	r.Calls = append(r.Calls, Call{Kind: OpText, Center: anchor, Text: text, Style: t})
}

// Arcs returns only the recorded arc calls.
func (r *Recorder) Arcs() []Call {
	var arcs []Call
	for _, c := range r.Calls {
		if c.Kind == OpArc {
			arcs = append(arcs, c)
		}
	}
	return arcs
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
