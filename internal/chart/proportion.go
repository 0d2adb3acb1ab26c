package chart

import (
	"math"
	"math/rand"
)

// Slots is the number of ring segments: four categories plus the
// implicit remainder slot.
const Slots = 5

// Categories is the number of user-colorable slots.
const Categories = Slots - 1

// Normalized holds per-slot proportions that sum to 1, or all zeros.
type Normalized [Slots]float64

// Sum returns the total of all slots.
func (n Normalized) Sum() float64 {
	var total float64
	for _, v := range n {
		total += v
	}
	return total
}

// Filled returns the proportion covered by the category slots, excluding
// the remainder slot.
func (n Normalized) Filled() float64 {
	return n.Sum() - n[Slots-1]
}

// Palette maps slot index to color. The last slot is always Transparent.
type Palette [Slots]Color

// NewPalette builds a palette from up to four colors. Missing colors are
// generated once here and never change afterwards; extra colors are ignored.
func NewPalette(colors []Color, rng *rand.Rand) Palette {
	var p Palette
	for i := 0; i < Categories; i++ {
		if i < len(colors) {
			p[i] = colors[i]
		} else {
			p[i] = RandomColor(rng)
		}
	}
	p[Slots-1] = Transparent
	return p
}

// FirstArc remembers the first non-zero category. Value is the raw weight,
// not the normalized proportion.
type FirstArc struct {
	Color Color   `json:"color"`
	Value float64 `json:"value"`
}

// Normalize pads or truncates weights to Slots entries and scales them to
// proportions of their total. Negative and non-finite weights count as 0.
func Normalize(weights []float64, palette Palette) (Normalized, FirstArc) {
	var raw Normalized
	for i := 0; i < Slots && i < len(weights); i++ {
		raw[i] = sanitizeWeight(weights[i])
	}

	memo := FirstArc{Color: Transparent}
	for i, v := range raw {
		if v != 0 {
			memo = FirstArc{Color: palette[i], Value: v}
			break
		}
	}

	total := raw.Sum()
	if total == 0 {
		return Normalized{}, memo
	}

	var out Normalized
	for i, v := range raw {
		out[i] = v / total
	}
	return out, memo
}

func sanitizeWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}
	return w
}
