package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/labfx/internal/flourish"
	"github.com/san-kum/labfx/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScene         = "organelles"
	DefaultTheme         = "lab"
	DefaultMagnification = 50
	DefaultFocus         = 50
	DefaultSignalCycle   = 2.0
)

type Config struct {
	Scene       string            `yaml:"scene"`
	Seed        int64             `yaml:"seed"`
	Theme       string            `yaml:"theme"`
	Particles   int               `yaml:"particles"`
	YeastCells  int               `yaml:"yeast_cells"`
	LabCells    int               `yaml:"lab_cells"`
	Palette     []string          `yaml:"palette"`
	SignalCycle float64           `yaml:"signal_cycle"`
	Organelles  []scene.Organelle `yaml:"organelles,omitempty"`
	Microscope  MicroscopeConfig  `yaml:"microscope"`
}

type MicroscopeConfig struct {
	Magnification int  `yaml:"magnification"`
	Focus         int  `yaml:"focus"`
	Stained       bool `yaml:"stained"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:       DefaultScene,
		Theme:       DefaultTheme,
		Particles:   flourish.DefaultParticles,
		YeastCells:  flourish.DefaultYeastCells,
		LabCells:    flourish.DefaultLabCells,
		Palette:     append([]string(nil), flourish.DefaultPalette...),
		SignalCycle: DefaultSignalCycle,
		Microscope: MicroscopeConfig{
			Magnification: DefaultMagnification,
			Focus:         DefaultFocus,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base; keys the file omits keep base's
// values. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects negative counts, a non-positive cycle and organelle
// lists that break the link generator's preconditions.
func (c *Config) Validate() error {
	if c.Particles < 0 || c.YeastCells < 0 || c.LabCells < 0 {
		return fmt.Errorf("counts must be non-negative: %w", scene.ErrOutOfRange)
	}
	if c.SignalCycle <= 0 {
		return fmt.Errorf("signal_cycle must be positive: %w", scene.ErrOutOfRange)
	}
	return scene.ValidateOrganelles(c.Organelles)
}

// Options converts the config into builder options.
func (c *Config) Options() flourish.Options {
	return flourish.Options{
		Particles:   c.Particles,
		YeastCells:  c.YeastCells,
		LabCells:    c.LabCells,
		Palette:     c.Palette,
		Organelles:  c.Organelles,
		SignalCycle: time.Duration(c.SignalCycle * float64(time.Second)),
	}
}
