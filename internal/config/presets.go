package config

import "sort"

var Presets = map[string]map[string]*Config{
	"particles": {
		"sparse": {Scene: "particles", Particles: 20, SignalCycle: DefaultSignalCycle},
		"dense":  {Scene: "particles", Particles: 150, SignalCycle: DefaultSignalCycle},
		"mono": {
			Scene: "particles", Particles: 50, SignalCycle: DefaultSignalCycle,
			Palette: []string{"#00c2cb"},
		},
	},
	"yeast": {
		"culture": {Scene: "yeast", YeastCells: 15, SignalCycle: DefaultSignalCycle},
		"bloom":   {Scene: "yeast", YeastCells: 40, SignalCycle: DefaultSignalCycle},
	},
	"microscope": {
		"slide": {
			Scene: "microscope", LabCells: 8, SignalCycle: DefaultSignalCycle,
			Microscope: MicroscopeConfig{Magnification: 50, Focus: 50},
		},
		"stained": {
			Scene: "microscope", LabCells: 8, SignalCycle: DefaultSignalCycle,
			Microscope: MicroscopeConfig{Magnification: 80, Focus: 100, Stained: true},
		},
		"blurry": {
			Scene: "microscope", LabCells: 12, SignalCycle: DefaultSignalCycle,
			Microscope: MicroscopeConfig{Magnification: 20, Focus: 0},
		},
	},
	"organelles": {
		"calm": {Scene: "organelles", SignalCycle: 4.0},
		"busy": {Scene: "organelles", SignalCycle: 1.0},
	},
}

// GetPreset returns a copy of the named preset layered over the
// defaults, or nil.
func GetPreset(sceneName, name string) *Config {
	presets, ok := Presets[sceneName]
	if !ok {
		return nil
	}
	p, ok := presets[name]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Scene = p.Scene
	if p.Particles > 0 {
		cfg.Particles = p.Particles
	}
	if p.YeastCells > 0 {
		cfg.YeastCells = p.YeastCells
	}
	if p.LabCells > 0 {
		cfg.LabCells = p.LabCells
	}
	if len(p.Palette) > 0 {
		cfg.Palette = append([]string(nil), p.Palette...)
	}
	if p.SignalCycle > 0 {
		cfg.SignalCycle = p.SignalCycle
	}
	if p.Microscope != (MicroscopeConfig{}) {
		cfg.Microscope = p.Microscope
	}
	return cfg
}

// ListPresets returns the preset names for a scene, sorted, or nil.
func ListPresets(sceneName string) []string {
	presets, ok := Presets[sceneName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
