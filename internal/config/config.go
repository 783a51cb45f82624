package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/dataset"
)

const (
	DefaultAlgorithm    = "bubble_sort"
	DefaultFPS          = 30
	DefaultStepsPerTick = 1
	DefaultTheme        = "cyberpunk"
	MaxFPS              = 120
	MaxStepsPerTick     = 64
)

type Config struct {
	Algorithm    string   `yaml:"algorithm" toml:"algorithm"`
	Compare      []string `yaml:"compare,omitempty" toml:"compare,omitempty"`
	Size         int      `yaml:"size" toml:"size"`
	Min          int      `yaml:"min" toml:"min"`
	Max          int      `yaml:"max" toml:"max"`
	Pattern      string   `yaml:"pattern" toml:"pattern"`
	Seed         int64    `yaml:"seed" toml:"seed"`
	Target       *int     `yaml:"target,omitempty" toml:"target,omitempty"`
	Range        *Range   `yaml:"range,omitempty" toml:"range,omitempty"`
	FPS          int      `yaml:"fps" toml:"fps"`
	StepsPerTick int      `yaml:"steps_per_tick" toml:"steps_per_tick"`
	Theme        string   `yaml:"theme" toml:"theme"`
}

type Range struct {
	Low  int `yaml:"low" toml:"low"`
	High int `yaml:"high" toml:"high"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:    DefaultAlgorithm,
		Size:         dataset.DefaultSize,
		Min:          dataset.DefaultMin,
		Max:          dataset.DefaultMax,
		Pattern:      string(dataset.Random),
		FPS:          DefaultFPS,
		StepsPerTick: DefaultStepsPerTick,
		Theme:        DefaultTheme,
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads path over the defaults. Files ending in .toml are parsed as
// TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values that cannot be defaulted sensibly.
func (c *Config) Validate() error {
	if _, err := dataset.ParsePattern(c.Pattern); err != nil {
		return err
	}
	if c.Range != nil && c.Range.Low < 0 {
		return fmt.Errorf("range low must be non-negative, got %d", c.Range.Low)
	}
	return nil
}

// Normalize clamps or defaults out-of-range values and returns a note per
// field it changed.
func (c *Config) Normalize() []string {
	var notes []string
	fix := func(field string, v *int, lo, hi int) {
		if clamped := dataset.Clamp(*v, lo, hi); clamped != *v {
			notes = append(notes, fmt.Sprintf("%s %d out of range, using %d", field, *v, clamped))
			*v = clamped
		}
	}

	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
		notes = append(notes, "algorithm empty, using "+DefaultAlgorithm)
	}
	fix("size", &c.Size, 1, dataset.MaxSize)
	if c.Min < 0 {
		notes = append(notes, fmt.Sprintf("min %d negative, using %d", c.Min, dataset.DefaultMin))
		c.Min = dataset.DefaultMin
	}
	fix("min", &c.Min, 0, dataset.MaxValue)
	if c.Max < c.Min {
		notes = append(notes, fmt.Sprintf("max %d below min, using %d", c.Max, c.Min))
		c.Max = c.Min
	}
	fix("max", &c.Max, c.Min, dataset.MaxValue)
	fix("fps", &c.FPS, 1, MaxFPS)
	fix("steps_per_tick", &c.StepsPerTick, 1, MaxStepsPerTick)
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Pattern == "" {
		c.Pattern = string(dataset.Random)
	}
	return notes
}

// DatasetSpec converts the array settings to a dataset spec.
func (c *Config) DatasetSpec() dataset.Spec {
	return dataset.Spec{
		Pattern: dataset.Pattern(c.Pattern),
		Size:    c.Size,
		Min:     c.Min,
		Max:     c.Max,
		Seed:    c.Seed,
	}
}
