package config

import (
	"errors"
	"fmt"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Overrides holds explicitly set flag values. Nil fields were not set.
type Overrides struct {
	Seed        *int64
	Particles   *int
	SignalCycle *float64
	Theme       *string
}

// Layers lists what Resolve stacks over the defaults, lowest first: the
// preset, the config file, then the overrides. A non-empty Scene wins
// over every layer.
type Layers struct {
	Scene        string
	Preset       string
	File         string
	Overrides    Overrides
	FallbackSeed int64 // used when no layer sets a non-zero seed
}

// Resolve builds and validates the effective config.
func Resolve(l Layers) (*Config, error) {
	cfg := DefaultConfig()

	if l.Preset != "" {
		presetScene := l.Scene
		if presetScene == "" {
			presetScene = DefaultScene
		}
		p := GetPreset(presetScene, l.Preset)
		if p == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, l.Preset, ListPresets(presetScene))
		}
		cfg = p
		cfg.Scene = presetScene
	}

	if l.File != "" {
		loaded, err := LoadOver(l.File, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	o := l.Overrides
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = l.FallbackSeed
	}
	if o.Particles != nil {
		cfg.Particles = *o.Particles
	}
	if o.SignalCycle != nil {
		cfg.SignalCycle = *o.SignalCycle
	}
	if o.Theme != nil {
		cfg.Theme = *o.Theme
	}

	if l.Scene != "" {
		cfg.Scene = l.Scene
	}
	if cfg.Scene == "" {
		cfg.Scene = DefaultScene
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
