package flourish

import (
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/labfx/internal/random"
	"github.com/san-kum/labfx/internal/scene"
)

// Options carries the tunable counts and inputs shared by all builders.
type Options struct {
	Particles   int
	YeastCells  int
	LabCells    int
	Palette     []string
	Organelles  []scene.Organelle
	SignalCycle time.Duration
}

func DefaultOptions() Options {
	return Options{
		Particles:  DefaultParticles,
		YeastCells: DefaultYeastCells,
		LabCells:   DefaultLabCells,
		Palette:    DefaultPalette,
	}
}

// Builder produces one scene.
type Builder func(rng random.Source, opts Options) scene.Scene

type Registry struct {
	builders map[string]Builder
	info     map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		builders: make(map[string]Builder),
		info:     make(map[string]string),
	}

	r.Register("particles", "floating lab particles", func(rng random.Source, o Options) scene.Scene {
		return Particles(rng, o.Particles, o.Palette)
	})
	r.Register("yeast", "drifting yeast cells", func(rng random.Source, o Options) scene.Scene {
		return YeastCells(rng, o.YeastCells)
	})
	r.Register("microscope", "virtual microscope slide", func(rng random.Source, o Options) scene.Scene {
		return LabCells(rng, o.LabCells)
	})
	r.Register("vesicle", "vesicle transport", func(rng random.Source, o Options) scene.Scene {
		return Vesicles(rng)
	})
	r.Register("membrane", "membrane dynamics", func(rng random.Source, o Options) scene.Scene {
		return Membrane()
	})
	r.Register("protein", "protein trafficking", func(rng random.Source, o Options) scene.Scene {
		return ProteinTrafficking()
	})
	r.Register("organelles", "organelle communication", func(rng random.Source, o Options) scene.Scene {
		return OrganelleDiagram(rng, o.Organelles, o.SignalCycle)
	})

	return r
}

// Register adds or replaces a builder.
func (r *Registry) Register(name, description string, b Builder) {
	r.builders[name] = b
	r.info[name] = description
}

func (r *Registry) Build(name string, rng random.Source, opts Options) (scene.Scene, error) {
	b, ok := r.builders[name]
	if !ok {
		return scene.Scene{}, fmt.Errorf("%w: %s", scene.ErrUnknownScene, name)
	}
	return b(rng, opts), nil
}

// Describe returns the one-line description of a scene.
func (r *Registry) Describe(name string) string {
	return r.info[name]
}

// ListScenes returns the registered scene names, sorted.
func (r *Registry) ListScenes() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
