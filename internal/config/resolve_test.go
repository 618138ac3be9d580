package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/labfx/internal/scene"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labfx.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func ptr[T any](v T) *T { return &v }

func TestResolve(t *testing.T) {
	const fallback = 1234

	tests := []struct {
		name      string
		layers    func(t *testing.T) Layers
		check     func(t *testing.T, cfg *Config)
		wantError error
	}{
		{
			name:   "defaults take fallback seed",
			layers: func(t *testing.T) Layers { return Layers{} },
			check: func(t *testing.T, cfg *Config) {
				if cfg.Scene != DefaultScene || cfg.Seed != fallback {
					t.Errorf("got scene %s seed %d", cfg.Scene, cfg.Seed)
				}
			},
		},
		{
			name:   "preset over defaults",
			layers: func(t *testing.T) Layers { return Layers{Scene: "particles", Preset: "dense"} },
			check: func(t *testing.T, cfg *Config) {
				if cfg.Particles != 150 || cfg.Scene != "particles" {
					t.Errorf("got %d particles in %s", cfg.Particles, cfg.Scene)
				}
			},
		},
		{
			name: "file layers over preset",
			layers: func(t *testing.T) Layers {
				return Layers{Scene: "particles", Preset: "dense", File: writeConfig(t, "seed: 7\nyeast_cells: 3\n")}
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Particles != 150 {
					t.Errorf("file dropped the preset: %d particles", cfg.Particles)
				}
				if cfg.YeastCells != 3 || cfg.Seed != 7 {
					t.Errorf("file values lost: yeast %d seed %d", cfg.YeastCells, cfg.Seed)
				}
			},
		},
		{
			name: "file keeps preset scene when it names none",
			layers: func(t *testing.T) Layers {
				return Layers{Preset: "calm", File: writeConfig(t, "particles: 5\n")}
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Scene != "organelles" || cfg.SignalCycle != 4.0 {
					t.Errorf("got scene %s cycle %v", cfg.Scene, cfg.SignalCycle)
				}
			},
		},
		{
			name: "flags beat file",
			layers: func(t *testing.T) Layers {
				return Layers{
					File: writeConfig(t, "particles: 10\nseed: 7\ntheme: mono\nsignal_cycle: 3\n"),
					Overrides: Overrides{
						Seed:        ptr(int64(99)),
						Particles:   ptr(42),
						SignalCycle: ptr(1.5),
						Theme:       ptr("stained"),
					},
				}
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Particles != 42 || cfg.Seed != 99 || cfg.SignalCycle != 1.5 || cfg.Theme != "stained" {
					t.Errorf("overrides not applied: %+v", cfg)
				}
			},
		},
		{
			name: "unset flags leave file values",
			layers: func(t *testing.T) Layers {
				return Layers{File: writeConfig(t, "particles: 10\ntheme: mono\n")}
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Particles != 10 || cfg.Theme != "mono" {
					t.Errorf("file values lost: %+v", cfg)
				}
			},
		},
		{
			name: "zero file seed falls back",
			layers: func(t *testing.T) Layers {
				return Layers{File: writeConfig(t, "seed: 0\n")}
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Seed != fallback {
					t.Errorf("expected fallback seed, got %d", cfg.Seed)
				}
			},
		},
		{
			name: "scene argument beats file",
			layers: func(t *testing.T) Layers {
				return Layers{Scene: "membrane", File: writeConfig(t, "scene: yeast\n")}
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Scene != "membrane" {
					t.Errorf("expected membrane, got %s", cfg.Scene)
				}
			},
		},
		{
			name: "file names the scene",
			layers: func(t *testing.T) Layers {
				return Layers{File: writeConfig(t, "scene: yeast\n")}
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Scene != "yeast" {
					t.Errorf("expected yeast, got %s", cfg.Scene)
				}
			},
		},
		{
			name:      "unknown preset",
			layers:    func(t *testing.T) Layers { return Layers{Scene: "particles", Preset: "nope"} },
			wantError: ErrUnknownPreset,
		},
		{
			name:      "override is validated",
			layers:    func(t *testing.T) Layers { return Layers{Overrides: Overrides{SignalCycle: ptr(0.0)}} },
			wantError: scene.ErrOutOfRange,
		},
		{
			name: "file is validated",
			layers: func(t *testing.T) Layers {
				return Layers{File: writeConfig(t, "organelles:\n  - {name: a, x: 1, y: 1}\n  - {name: a, x: 2, y: 2}\n")}
			},
			wantError: scene.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.layers(t)
			l.FallbackSeed = fallback
			cfg, err := Resolve(l)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("expected %v, got %v", tt.wantError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestResolveDoesNotMutatePresets(t *testing.T) {
	path := writeConfig(t, "particles: 3\n")
	if _, err := Resolve(Layers{Scene: "particles", Preset: "dense", File: path}); err != nil {
		t.Fatal(err)
	}
	if Presets["particles"]["dense"].Particles != 150 {
		t.Error("resolving changed the preset table")
	}
}
