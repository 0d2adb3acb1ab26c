package demo

import (
	"fmt"
	"strings"
	"time"
)

// Preset controls how often demo data is replaced.
type Preset string

const (
	PresetOff    Preset = "off"
	PresetQuick  Preset = "quick"
	PresetMedium Preset = "medium"
	PresetSlow   Preset = "slow"
)

func ParsePreset(value string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(value))) {
	case "", PresetOff:
		return PresetOff, nil
	case PresetQuick, PresetMedium, PresetSlow:
		return Preset(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo preset %q (valid: off, quick, medium, slow)", value)
	}
}

// Interval returns how long each dataset stays on screen. Zero means the
// data never changes on its own.
func Interval(preset Preset) time.Duration {
	switch preset {
	case PresetQuick:
		// shorter than a reveal run, so runs get cancelled mid-flight
		return 2 * time.Second
	case PresetMedium:
		return 6 * time.Second
	case PresetSlow:
		return 15 * time.Second
	default:
		return 0
	}
}
