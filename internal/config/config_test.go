package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Plot.Samples != 400 {
		t.Errorf("expected 400 samples, got %d", cfg.Plot.Samples)
	}
	if cfg.Plot.Margin != 0.5 {
		t.Errorf("expected margin 0.5, got %f", cfg.Plot.Margin)
	}
	if cfg.Overview.Lo != 0 || cfg.Overview.Hi != 3 {
		t.Errorf("expected overview [0, 3], got [%f, %f]", cfg.Overview.Lo, cfg.Overview.Hi)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rootlab.yaml")

	cfg := DefaultConfig()
	cfg.Plot.Theme = "ocean"
	cfg.Solvers.Newton.MaxIter = 7
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Plot.Theme != "ocean" {
		t.Errorf("expected theme ocean, got %s", loaded.Plot.Theme)
	}
	if loaded.NewtonSettings().MaxIter != 7 {
		t.Errorf("expected newton maxiter 7, got %d", loaded.NewtonSettings().MaxIter)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("plot:\n  margin: 1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Plot.Margin != 1.5 {
		t.Errorf("expected margin 1.5, got %f", cfg.Plot.Margin)
	}
	if cfg.Plot.Samples != DefaultSamples {
		t.Errorf("expected default samples, got %d", cfg.Plot.Samples)
	}
	if cfg.BisectSettings().MaxIter != 100 {
		t.Errorf("expected default bisect maxiter, got %d", cfg.BisectSettings().MaxIter)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("plot:\n  samples: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("wide")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Plot.Width != 160 {
		t.Errorf("expected width 160, got %d", cfg.Plot.Width)
	}
	if cfg.Solvers.Bisect.MaxIter != 100 {
		t.Error("preset should keep solver defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
