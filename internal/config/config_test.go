package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/labfx/internal/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene != "organelles" {
		t.Errorf("expected scene organelles, got %s", cfg.Scene)
	}
	if cfg.Particles != 50 {
		t.Errorf("expected 50 particles, got %d", cfg.Particles)
	}
	if cfg.SignalCycle <= 0 {
		t.Error("signal cycle should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("particles", "dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles != 150 {
		t.Errorf("expected 150 particles, got %d", cfg.Particles)
	}
	if cfg.YeastCells != 15 {
		t.Errorf("expected default yeast cells, got %d", cfg.YeastCells)
	}

	stained := GetPreset("microscope", "stained")
	if !stained.Microscope.Stained || stained.Microscope.Focus != 100 {
		t.Errorf("unexpected microscope preset %+v", stained.Microscope)
	}
}

func TestGetPresetDoesNotAlias(t *testing.T) {
	cfg := GetPreset("particles", "mono")
	cfg.Palette[0] = "#000000"
	again := GetPreset("particles", "mono")
	if again.Palette[0] != "#00c2cb" {
		t.Error("preset palette was mutated through a returned config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("particles", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "dense"); cfg != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("microscope")
	if len(presets) != 3 || presets[0] != "blurry" {
		t.Errorf("unexpected presets %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labfx.yaml")

	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Organelles = []scene.Organelle{
		{Name: "nucleus", X: 50, Y: 50, Size: 30},
		{Name: "vacuole", X: 30, Y: 70, Size: 25},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
	if len(loaded.Organelles) != 2 || loaded.Organelles[1].Name != "vacuole" {
		t.Errorf("unexpected organelles %+v", loaded.Organelles)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labfx.yaml")
	if err := os.WriteFile(path, []byte("scene: yeast\nseed: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Scene != "yeast" || cfg.Particles != 50 {
		t.Errorf("expected overrides over defaults, got %+v", cfg)
	}
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labfx.yaml")
	data := "organelles:\n  - {name: a, x: 10, y: 10, size: 5}\n  - {name: a, x: 20, y: 20, size: 5}\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, scene.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative particles", func(c *Config) { c.Particles = -1 }},
		{"zero cycle", func(c *Config) { c.SignalCycle = 0 }},
		{"organelle off canvas", func(c *Config) { c.Organelles = []scene.Organelle{{Name: "a", X: 120}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, scene.ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange, got %v", err)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SignalCycle = 1.5
	opts := cfg.Options()
	if opts.SignalCycle != 1500*time.Millisecond {
		t.Errorf("expected 1.5s cycle, got %v", opts.SignalCycle)
	}
	if opts.LabCells != 8 {
		t.Errorf("expected 8 lab cells, got %d", opts.LabCells)
	}
}
