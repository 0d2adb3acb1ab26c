// Package config loads statsview settings from defaults, an optional YAML
// file and STATSVIEW_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pablasso/statsview/internal/chart"
	"github.com/pablasso/statsview/internal/demo"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. STATSVIEW_FILLING.
const EnvPrefix = "STATSVIEW"

// Config is the complete application configuration.
type Config struct {
	TextSize  float64       `mapstructure:"text_size"`
	LineWidth float64       `mapstructure:"line_width"`
	Colors    []string      `mapstructure:"colors"`
	Duration  time.Duration `mapstructure:"duration"`
	Rotate    bool          `mapstructure:"rotate"`
	Filling   int           `mapstructure:"filling"`
	Data      []float64     `mapstructure:"data"`
	Scenario  string        `mapstructure:"scenario"`
	Cycle     string        `mapstructure:"cycle"`
	DebugLog  string        `mapstructure:"debug_log"`
}

// Load reads the configuration. When path is empty the file is optional and
// searched for as statsview.yaml in the working directory and in
// ~/.config/statsview. Environment variables override the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("statsview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "statsview"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Filling = chart.ClampFilling(cfg.Filling)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("text_size", chart.DefaultTextSize)
	v.SetDefault("line_width", chart.DefaultLineWidth)
	v.SetDefault("colors", []string{})
	v.SetDefault("duration", chart.DefaultDuration)
	v.SetDefault("rotate", false)
	v.SetDefault("filling", 100)
	v.SetDefault("data", []float64{})
	v.SetDefault("scenario", string(demo.ScenarioEven))
	v.SetDefault("cycle", string(demo.PresetOff))
	v.SetDefault("debug_log", "")
}

// Validate checks every field that cannot be silently corrected.
func (c *Config) Validate() error {
	if c.TextSize <= 0 {
		return fmt.Errorf("text_size must be positive, got %v", c.TextSize)
	}
	if c.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive, got %v", c.LineWidth)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	}
	if len(c.Colors) > chart.Categories {
		return fmt.Errorf("at most %d colors can be configured, got %d", chart.Categories, len(c.Colors))
	}
	if _, err := c.ParseColors(); err != nil {
		return err
	}
	for i, w := range c.Data {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("data[%d] must be a non-negative number, got %v", i, w)
		}
	}
	if _, err := demo.ParseScenario(c.Scenario); err != nil {
		return err
	}
	if _, err := demo.ParsePreset(c.Cycle); err != nil {
		return err
	}
	return nil
}

// ParseColors converts the configured hex strings.
func (c *Config) ParseColors() ([]chart.Color, error) {
	colors := make([]chart.Color, 0, len(c.Colors))
	for _, s := range c.Colors {
		col, err := chart.ParseColor(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// ChartOptions builds widget options from a validated config.
func (c *Config) ChartOptions() (chart.Options, error) {
	if err := c.Validate(); err != nil {
		return chart.Options{}, err
	}
	colors, _ := c.ParseColors()
	return chart.Options{
		TextSize:  c.TextSize,
		LineWidth: c.LineWidth,
		Colors:    colors,
		Duration:  c.Duration,
		Rotate:    c.Rotate,
	}, nil
}

// ParseWeights parses a comma-separated weight list such as "500,500,500".
// Blank input yields an empty list.
func ParseWeights(value string) ([]float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return []float64{}, nil
	}

	parts := strings.Split(value, ",")
	weights := make([]float64, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		if w < 0 {
			return nil, fmt.Errorf("invalid weight %q: weights must not be negative", p)
		}
		weights = append(weights, w)
	}
	return weights, nil
}
