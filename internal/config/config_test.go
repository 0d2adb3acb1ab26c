package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pablasso/statsview/internal/chart"
	"github.com/pablasso/statsview/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	testutil.SetupTestDir(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TextSize != chart.DefaultTextSize {
		t.Errorf("TextSize: got %v, want %v", cfg.TextSize, chart.DefaultTextSize)
	}
	if cfg.LineWidth != chart.DefaultLineWidth {
		t.Errorf("LineWidth: got %v, want %v", cfg.LineWidth, chart.DefaultLineWidth)
	}
	if cfg.Duration != chart.DefaultDuration {
		t.Errorf("Duration: got %v, want %v", cfg.Duration, chart.DefaultDuration)
	}
	if cfg.Filling != 100 {
		t.Errorf("Filling: got %d, want 100", cfg.Filling)
	}
	if cfg.Scenario != "even" {
		t.Errorf("Scenario: got %q, want even", cfg.Scenario)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	testutil.SetupTestDir(t)

	path := filepath.Join(t.TempDir(), "statsview.yaml")
	content := `
text_size: 32
line_width: 8
colors: ["#FF0000", "#00FF00"]
duration: 2s
rotate: true
filling: 150
data: [1, 2, 3]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TextSize != 32 || cfg.LineWidth != 8 {
		t.Errorf("sizes: got %v/%v", cfg.TextSize, cfg.LineWidth)
	}
	if cfg.Duration != 2*time.Second {
		t.Errorf("Duration: got %v", cfg.Duration)
	}
	if !cfg.Rotate {
		t.Error("expected rotate")
	}
	if cfg.Filling != 100 {
		t.Errorf("expected filling clamped to 100, got %d", cfg.Filling)
	}
	if len(cfg.Data) != 3 || cfg.Data[2] != 3 {
		t.Errorf("Data: got %v", cfg.Data)
	}

	opts, err := cfg.ChartOptions()
	if err != nil {
		t.Fatalf("ChartOptions() error: %v", err)
	}
	if opts.Duration != 2*time.Second {
		t.Errorf("options Duration: got %v", opts.Duration)
	}
	if len(opts.Colors) != 2 || opts.Colors[0] != 0xFFFF0000 {
		t.Errorf("Colors: got %v", opts.Colors)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	testutil.SetupTestDir(t)

	path := filepath.Join(t.TempDir(), "statsview.yaml")
	if err := os.WriteFile(path, []byte("filling: 40\nrotate: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STATSVIEW_FILLING", "70")
	t.Setenv("STATSVIEW_DATA", "5,5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Filling != 70 {
		t.Errorf("expected env filling 70, got %d", cfg.Filling)
	}
	if !cfg.Rotate {
		t.Error("expected rotate from file")
	}
	if len(cfg.Data) != 2 || cfg.Data[0] != 5 {
		t.Errorf("expected env data [5 5], got %v", cfg.Data)
	}
}

func TestLoad_NegativeDataRejectedFromEverySource(t *testing.T) {
	testutil.SetupTestDir(t)

	path := filepath.Join(t.TempDir(), "statsview.yaml")
	if err := os.WriteFile(path, []byte("data: [1, -2]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "data[1]") {
		t.Errorf("expected file data to be rejected, got %v", err)
	}

	t.Setenv("STATSVIEW_DATA", "3,-1")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "data[1]") {
		t.Errorf("expected env data to be rejected, got %v", err)
	}
}

func TestChartOptions_RevealNeverDecreases(t *testing.T) {
	testutil.SetupTestDir(t)

	// easing is not a setting; an old key in the file must not change the reveal
	path := filepath.Join(t.TempDir(), "statsview.yaml")
	if err := os.WriteFile(path, []byte("duration: 1s\neasing: bounce\nrotate: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	opts, err := cfg.ChartOptions()
	if err != nil {
		t.Fatalf("ChartOptions() error: %v", err)
	}

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	opts.Clock = func() time.Time { return now }
	v := chart.New(opts)
	run := v.SetData([]float64{1, 2, 3})

	prev := v.Progress()
	for i := 0; i < 1000; i++ {
		now = now.Add(chart.FrameInterval)
		more := v.Tick(run)
		if got := v.Progress(); got < prev {
			t.Fatalf("tick %d: progress decreased %v -> %v", i, prev, got)
		}
		prev = v.Progress()
		if !more {
			break
		}
	}
	if prev != 1 {
		t.Errorf("expected reveal to end at 1, got %v", prev)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	testutil.SetupTestDir(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			TextSize:  20,
			LineWidth: 5,
			Duration:  time.Second,
			Scenario:  "even",
			Cycle:     "off",
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errSub string
	}{
		{"text size", func(c *Config) { c.TextSize = 0 }, "text_size"},
		{"line width", func(c *Config) { c.LineWidth = -1 }, "line_width"},
		{"duration", func(c *Config) { c.Duration = 0 }, "duration"},
		{"too many colors", func(c *Config) { c.Colors = []string{"#000", "#000", "#000", "#000", "#000"} }, "at most 4"},
		{"bad color", func(c *Config) { c.Colors = []string{"#zzzzzz"} }, "invalid color"},
		{"negative data", func(c *Config) { c.Data = []float64{1, -2} }, "data"},
		{"non-finite data", func(c *Config) { c.Data = []float64{math.Inf(1)} }, "data"},
		{"bad scenario", func(c *Config) { c.Scenario = "weird" }, "invalid demo scenario"},
		{"bad cycle", func(c *Config) { c.Cycle = "turbo" }, "invalid demo preset"},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("expected error containing %q, got %v", tt.errSub, err)
			}
		})
	}
}

func TestParseWeights(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"500,500,500,500", []float64{500, 500, 500, 500}, false},
		{" 1.5 , 2 ", []float64{1.5, 2}, false},
		{"", []float64{}, false},
		{"1,abc", nil, true},
		{"1,-2", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseWeights(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWeights(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseWeights(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseWeights(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
