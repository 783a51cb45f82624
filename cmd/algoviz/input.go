package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/registry"
)

// resolveConfig layers defaults, a preset or config file, and finally any
// flag the user actually set.
func resolveConfig(cmd *cobra.Command, algorithm string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		name := algorithm
		if name == "" {
			name = config.DefaultAlgorithm
		}
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if algorithm != "" {
		cfg.Algorithm = algorithm
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("min") {
		cfg.Min = minVal
	}
	if flags.Changed("max") {
		cfg.Max = maxVal
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("target") {
		t := target
		cfg.Target = &t
	}
	if flags.Changed("low") || flags.Changed("high") {
		cfg.Range = &config.Range{Low: low, High: high}
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Lookup("steps-per-tick") != nil && flags.Changed("steps-per-tick") {
		cfg.StepsPerTick = stepsPerTick
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, note := range cfg.Normalize() {
		log.Printf("config: %s", note)
	}
	return cfg, nil
}

// buildInput returns the explicit --array when given, otherwise an array
// generated from cfg.
func buildInput(cfg *config.Config) ([]int, error) {
	if arrayText != "" {
		return dataset.ParseArray(arrayText)
	}
	return dataset.Generate(cfg.DatasetSpec())
}

func explicitArray() ([]int, error) {
	if arrayText == "" {
		return nil, nil
	}
	return dataset.ParseArray(arrayText)
}

// runOptions resolves the search target and sort range against arr. A
// negative range end means the last index.
func runOptions(cfg *config.Config, arr []int) registry.Options {
	opts := registry.Options{Target: dataset.PickTarget(arr, cfg.Seed, 0)}
	if cfg.Target != nil {
		opts.Target = *cfg.Target
	}
	if r := cfg.Range; r != nil {
		hi := r.High
		if hi < 0 {
			hi = len(arr) - 1
		}
		opts.Range = &registry.Range{Low: r.Low, High: hi}
	}
	return opts
}

// setupLogging sends the std logger to a file while the TUI owns the
// terminal, or discards it when no log file is requested.
func setupLogging() (func(), error) {
	path := logFile
	if path == "" && os.Getenv("ALGOVIZ_DEBUG") != "" {
		path = "algoviz.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "algoviz")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}
