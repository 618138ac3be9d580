package flourish

import (
	"time"

	"github.com/san-kum/labfx/internal/random"
	"github.com/san-kum/labfx/internal/scene"
)

const (
	DefaultParticles  = 50
	DefaultYeastCells = 15
	DefaultLabCells   = 8
)

// DefaultPalette is the lab palette particles draw their color from.
var DefaultPalette = []string{"#00c2cb", "#0a84ff", "#00d68f", "#bf5af2"}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Particles scatters n floating dots over the container.
func Particles(rng random.Source, n int, palette []string) scene.Scene {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	els := make([]scene.Element, 0, n)
	for i := 0; i < n; i++ {
		x := random.Uniform(rng, 0, 100)
		y := random.Uniform(rng, 0, 100)
		size := random.Uniform(rng, 1, 6)
		color := random.Pick(rng, palette)
		opacity := random.Uniform(rng, 0.1, 0.6)

		els = append(els, scene.Element{
			Kind:    scene.KindParticle,
			Class:   "particle",
			X:       x,
			Y:       y,
			Width:   size,
			Height:  size,
			Unit:    scene.Pixels,
			Fill:    color,
			Radius:  "50%",
			Opacity: opacity,
			Anim: &scene.Animation{
				Timeline: "particleFloat",
				Duration: seconds(random.Uniform(rng, 10, 30)),
				Delay:    seconds(random.Uniform(rng, 0, 5)),
				Params: map[string]float64{
					"opacity": opacity,
					"spin":    random.Uniform(rng, 0, 360),
				},
			},
		})
	}
	return scene.Scene{Name: "particles", Elements: els}
}
