package flourish

import (
	"github.com/san-kum/labfx/internal/random"
	"github.com/san-kum/labfx/internal/scene"
)

// YeastCells builds the drifting background cells, each holding one to
// three organelles.
func YeastCells(rng random.Source, n int) scene.Scene {
	els := make([]scene.Element, 0, n)
	for i := 0; i < n; i++ {
		x := random.Uniform(rng, 0, 100)
		y := random.Uniform(rng, 0, 100)
		size := random.Uniform(rng, 20, 80)

		count := random.Intn(rng, 3) + 1
		orgs := make([]scene.Element, 0, count)
		for j := 0; j < count; j++ {
			ox := random.Uniform(rng, 15, 85)
			oy := random.Uniform(rng, 15, 85)
			osize := random.Uniform(rng, 5, 15)
			orgs = append(orgs, scene.Element{
				Kind:   scene.KindOrganelle,
				X:      ox,
				Y:      oy,
				Width:  osize,
				Height: osize,
				Unit:   scene.Pixels,
				Fill:   "rgba(0, 194, 203, 0.2)",
				Radius: "50%",
			})
		}

		els = append(els, scene.Element{
			Kind:   scene.KindCell,
			Class:  "yeast-cell",
			X:      x,
			Y:      y,
			Width:  size,
			Height: size,
			Unit:   scene.Pixels,
			Fill:   "rgba(0, 194, 203, 0.05)",
			Border: "1px solid rgba(0, 194, 203, 0.3)",
			Radius: "50%",
			Anim: &scene.Animation{
				Timeline: "cellDrift",
				Duration: seconds(random.Uniform(rng, 20, 50)),
				Params: map[string]float64{
					"dx":   random.Uniform(rng, -25, 25),
					"dy":   random.Uniform(rng, -25, 25),
					"spin": random.Uniform(rng, 0, 30),
				},
			},
			Children: orgs,
		})
	}
	return scene.Scene{Name: "yeast", Elements: els}
}

// LabCell builds one microscope slide cell with two to six organelles.
func LabCell(rng random.Source) scene.Element {
	x := random.Uniform(rng, 10, 90)
	y := random.Uniform(rng, 10, 90)
	size := random.Uniform(rng, 40, 100)

	count := random.Intn(rng, 5) + 2
	orgs := make([]scene.Element, 0, count)
	for j := 0; j < count; j++ {
		ox := random.Uniform(rng, 15, 85)
		oy := random.Uniform(rng, 15, 85)
		osize := random.Uniform(rng, 10, 25)
		orgs = append(orgs, scene.Element{
			Kind:   scene.KindOrganelle,
			X:      ox,
			Y:      oy,
			Width:  osize,
			Height: osize,
			Unit:   scene.Pixels,
			Fill:   "rgba(0, 194, 203, 0.3)",
			Radius: "50%",
			Anim: &scene.Animation{
				Timeline:  "organelleMovement",
				Duration:  seconds(8),
				Alternate: true,
				Easing:    "ease-in-out",
			},
		})
	}

	return scene.Element{
		Kind:   scene.KindCell,
		Class:  "lab-yeast-cell",
		X:      x,
		Y:      y,
		Width:  size,
		Height: size,
		Unit:   scene.Pixels,
		Fill:   "rgba(0, 194, 203, 0.1)",
		Border: "2px solid rgba(0, 194, 203, 0.4)",
		Radius: "50%",
		Anim: &scene.Animation{
			Timeline:  "cellMovement",
			Duration:  seconds(10),
			Alternate: true,
			Easing:    "ease-in-out",
		},
		Children: orgs,
	}
}

// LabCells builds the cells shown under the virtual microscope.
func LabCells(rng random.Source, n int) scene.Scene {
	els := make([]scene.Element, 0, n)
	for i := 0; i < n; i++ {
		els = append(els, LabCell(rng))
	}
	return scene.Scene{Name: "microscope", Elements: els}
}
