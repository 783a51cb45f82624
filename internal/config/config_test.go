package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/algoviz/internal/dataset"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble_sort" {
		t.Errorf("expected algorithm bubble_sort, got %s", cfg.Algorithm)
	}
	if cfg.Size <= 0 {
		t.Error("size should be positive")
	}
	if cfg.Min != 10 || cfg.Max != 400 {
		t.Errorf("expected value range 10..400, got %d..%d", cfg.Min, cfg.Max)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if notes := cfg.Normalize(); len(notes) != 0 {
		t.Errorf("default config needed normalizing: %v", notes)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bubble_sort", "worst")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Pattern != "reversed" {
		t.Errorf("expected reversed pattern, got %s", cfg.Pattern)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("preset should keep default fps, got %d", cfg.FPS)
	}

	cfg.Size = 1
	if Presets["bubble_sort"]["worst"].Size == 1 {
		t.Error("GetPreset returned a shared pointer")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("bubble_sort", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "small"); cfg != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("quick_sort")
	if len(presets) != 4 || presets[0] != "classic" {
		t.Errorf("unexpected quick_sort presets: %v", presets)
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestNormalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 5000
	cfg.FPS = 0
	cfg.Min = -3
	cfg.Max = 2
	cfg.Algorithm = ""

	notes := cfg.Normalize()
	if cfg.Size != 200 {
		t.Errorf("size = %d, want 200", cfg.Size)
	}
	if cfg.FPS != 1 {
		t.Errorf("fps = %d, want 1", cfg.FPS)
	}
	if cfg.Min != 10 || cfg.Max != 10 {
		t.Errorf("bounds = %d..%d, want 10..10", cfg.Min, cfg.Max)
	}
	if cfg.Algorithm != DefaultAlgorithm {
		t.Errorf("algorithm = %q", cfg.Algorithm)
	}
	if len(notes) != 5 {
		t.Errorf("expected 5 notes, got %d: %v", len(notes), notes)
	}
}

func TestNormalize_HugeBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Min = 0
	cfg.Max = math.MaxInt

	notes := cfg.Normalize()
	if cfg.Max != dataset.MaxValue {
		t.Errorf("max = %d, want %d", cfg.Max, dataset.MaxValue)
	}
	if len(notes) != 1 {
		t.Errorf("expected 1 note, got %v", notes)
	}
	if _, err := dataset.Generate(cfg.DatasetSpec()); err != nil {
		t.Errorf("generate after normalize: %v", err)
	}
}

func TestValidate_Pattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "zigzag"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestLoad_YAMLAndTOML(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "viz.yaml")
	if err := os.WriteFile(yamlPath, []byte("algorithm: quick_sort\nsize: 16\nrange:\n  low: 2\n  high: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if cfg.Algorithm != "quick_sort" || cfg.Size != 16 || cfg.Range == nil || cfg.Range.High != 9 {
		t.Errorf("yaml config = %+v", cfg)
	}
	if cfg.Max != 400 {
		t.Errorf("unset fields should keep defaults, max = %d", cfg.Max)
	}

	tomlPath := filepath.Join(dir, "viz.toml")
	if err := os.WriteFile(tomlPath, []byte("algorithm = \"linear_search\"\ntarget = 77\nfps = 60\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(tomlPath)
	if err != nil {
		t.Fatalf("toml: %v", err)
	}
	if cfg.Algorithm != "linear_search" || cfg.Target == nil || *cfg.Target != 77 || cfg.FPS != 60 {
		t.Errorf("toml config = %+v", cfg)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.yaml", "out.toml"} {
		path := filepath.Join(dir, name)
		cfg := DefaultConfig()
		cfg.Compare = []string{"bubble_sort", "radix_sort"}
		if err := Save(path, cfg); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(got.Compare) != 2 || got.Compare[1] != "radix_sort" {
			t.Errorf("%s: compare = %v", name, got.Compare)
		}
	}
}
