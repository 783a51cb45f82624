package config

import "sort"

func intPtr(v int) *int { return &v }

var Presets = map[string]map[string]*Config{
	"bubble_sort": {
		"small": {
			Algorithm: "bubble_sort", Size: 12, Min: 10, Max: 400, Pattern: "random", Seed: 1,
		},
		"worst": {
			Algorithm: "bubble_sort", Size: 24, Min: 10, Max: 400, Pattern: "reversed", Seed: 1,
		},
		"best": {
			Algorithm: "bubble_sort", Size: 24, Min: 10, Max: 400, Pattern: "sorted", Seed: 1,
		},
	},
	"merge_sort": {
		"classic": {
			Algorithm: "merge_sort", Size: 32, Min: 10, Max: 400, Pattern: "random", Seed: 7,
		},
		"sorted": {
			Algorithm: "merge_sort", Size: 32, Min: 10, Max: 400, Pattern: "sorted", Seed: 7,
		},
	},
	"quick_sort": {
		"classic": {
			Algorithm: "quick_sort", Size: 48, Min: 10, Max: 400, Pattern: "random", Seed: 3,
		},
		"duplicates": {
			Algorithm: "quick_sort", Size: 32, Min: 10, Max: 400, Pattern: "few_unique", Seed: 3,
		},
		"worst": {
			Algorithm: "quick_sort", Size: 32, Min: 10, Max: 400, Pattern: "sorted", Seed: 3,
		},
		"half": {
			Algorithm: "quick_sort", Size: 32, Min: 10, Max: 400, Pattern: "random", Seed: 3,
			Range: &Range{Low: 0, High: 15},
		},
	},
	"radix_sort": {
		"classic": {
			Algorithm: "radix_sort", Size: 32, Min: 10, Max: 400, Pattern: "random", Seed: 5,
		},
		"wide": {
			Algorithm: "radix_sort", Size: 32, Min: 0, Max: 9999, Pattern: "random", Seed: 5,
		},
	},
	"linear_search": {
		"hit": {
			Algorithm: "linear_search", Size: 40, Min: 10, Max: 400, Pattern: "random", Seed: 11,
		},
		"miss": {
			Algorithm: "linear_search", Size: 40, Min: 10, Max: 400, Pattern: "random", Seed: 11,
			Target: intPtr(5),
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(algorithm, preset string) *Config {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algPresets[preset]
	if !ok {
		return nil
	}
	c := *DefaultConfig()
	c.Algorithm = cfg.Algorithm
	c.Size = cfg.Size
	c.Min = cfg.Min
	c.Max = cfg.Max
	c.Pattern = cfg.Pattern
	c.Seed = cfg.Seed
	c.Target = cfg.Target
	c.Range = cfg.Range
	return &c
}

func ListPresets(algorithm string) []string {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algPresets))
	for name := range algPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
