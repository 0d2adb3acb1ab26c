package chart

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xAARRGGBB value.
type Color uint32

// Transparent paints the unfilled part of the ring. It is not fully
// transparent so the background circle stays faintly visible.
const Transparent Color = 0x01CCCCCC

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// NRGBA converts the color for use with image/draw.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// Hex formats the color as #RRGGBB for opaque colors and #AARRGGBB otherwise.
func (c Color) Hex() string {
	if c.Alpha() == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses #RGB, #RRGGBB or #AARRGGBB.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := uint8(0xFF)
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[1:3], "%02x", &a); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = a
		s = "#" + s[3:]
	}
	if len(s) != 4 && len(s) != 7 {
		return 0, fmt.Errorf("invalid color %q: want #RGB, #RRGGBB or #AARRGGBB", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return ARGB(alpha, r, g, b), nil
}

// RandomColor returns a random opaque color.
func RandomColor(rng *rand.Rand) Color {
	c := colorful.FastHappyColorWithRand(rng).Clamped()
	r, g, b := c.RGB255()
	return ARGB(0xFF, r, g, b)
}

// MarshalText encodes the color as Hex does.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText parses a hex color.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
