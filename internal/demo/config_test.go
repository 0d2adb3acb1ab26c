package demo

import (
	"testing"
	"time"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    Preset
		wantErr bool
	}{
		{in: "", want: PresetOff},
		{in: "quick", want: PresetQuick},
		{in: " Slow ", want: PresetSlow},
		{in: "turbo", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
		want   time.Duration
	}{
		{name: "off", preset: PresetOff, want: 0},
		{name: "quick", preset: PresetQuick, want: 2 * time.Second},
		{name: "medium", preset: PresetMedium, want: 6 * time.Second},
		{name: "slow", preset: PresetSlow, want: 15 * time.Second},
		{name: "unknown", preset: Preset("turbo"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interval(tt.preset); got != tt.want {
				t.Fatalf("Interval(%q) = %s, want %s", tt.preset, got, tt.want)
			}
		})
	}
}

func TestInterval_QuickCancelsDefaultReveal(t *testing.T) {
	// chart.DefaultDuration is 3s
	if Interval(PresetQuick) >= 3*time.Second {
		t.Errorf("quick preset should replace data before a reveal finishes")
	}
}
