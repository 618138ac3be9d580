package flourish

import (
	"math"
	"time"

	"github.com/san-kum/labfx/internal/random"
	"github.com/san-kum/labfx/internal/scene"
	"github.com/san-kum/labfx/internal/signal"
)

func membrane(class, border, fill string, anim *scene.Animation) scene.Element {
	return scene.Element{
		Kind:   scene.KindMembrane,
		Class:  class,
		X:      10,
		Y:      10,
		Width:  80,
		Height: 80,
		Unit:   scene.Percent,
		Fill:   fill,
		Border: border,
		Radius: "50%",
		Anim:   anim,
	}
}

// Vesicles builds the vesicle transport diagram.
func Vesicles(rng random.Source) scene.Scene {
	els := []scene.Element{
		membrane("cell-membrane", "2px solid rgba(0, 194, 203, 0.6)", "rgba(10, 37, 64, 0.3)", nil),
	}
	for i := 0; i < 5; i++ {
		size := random.Uniform(rng, 10, 20)
		els = append(els, scene.Element{
			Kind:     scene.KindVesicle,
			Class:    "vesicle",
			X:        0,
			Y:        50,
			Width:    size,
			Height:   size,
			Unit:     scene.Pixels,
			Fill:     "rgba(0, 194, 203, 0.6)",
			Radius:   "50%",
			Centered: true,
			Anim: &scene.Animation{
				Timeline: "vesicleMovement",
				Duration: seconds(8),
				Delay:    seconds(float64(i) * 1.5),
			},
		})
	}
	return scene.Scene{Name: "vesicle", Elements: els}
}

// Membrane builds the membrane dynamics diagram: a pulsing membrane with
// eight proteins spaced evenly on its rim.
func Membrane() scene.Scene {
	els := []scene.Element{
		membrane("dynamic-membrane", "3px solid rgba(0, 194, 203, 0.6)", "rgba(10, 37, 64, 0.2)", &scene.Animation{
			Timeline:  "membranePulse",
			Duration:  seconds(4),
			Alternate: true,
			Easing:    "ease-in-out",
		}),
	}
	const proteins = 8
	for i := 0; i < proteins; i++ {
		angle := float64(i) / proteins * 2 * math.Pi
		els = append(els, scene.Element{
			Kind:     scene.KindProtein,
			Class:    "membrane-protein",
			X:        50 + math.Cos(angle)*40,
			Y:        50 + math.Sin(angle)*40,
			Width:    15,
			Height:   15,
			Unit:     scene.Pixels,
			Fill:     "rgba(10, 132, 255, 0.8)",
			Radius:   "50%",
			Centered: true,
			Anim: &scene.Animation{
				Timeline:  "proteinFloat",
				Duration:  seconds(6),
				Delay:     seconds(float64(i) * 0.5),
				Alternate: true,
				Easing:    "ease-in-out",
			},
		})
	}
	return scene.Scene{Name: "membrane", Elements: els}
}

// TraffickingOrganelles are the stations of the protein trafficking diagram.
var TraffickingOrganelles = []scene.Organelle{
	{Name: "nucleus", X: 50, Y: 50, Size: 40, Color: "rgba(191, 90, 242, 0.4)"},
	{Name: "er", X: 30, Y: 70, Size: 30, Color: "rgba(0, 194, 203, 0.4)"},
	{Name: "golgi", X: 70, Y: 60, Size: 25, Color: "rgba(0, 214, 143, 0.4)", Radius: "30% 70% 70% 30% / 30% 30% 70% 70%"},
}

func organelleElement(o scene.Organelle, anim *scene.Animation) scene.Element {
	return scene.Element{
		Kind:     scene.KindOrganelle,
		Class:    o.Name,
		X:        o.X,
		Y:        o.Y,
		Width:    o.Size,
		Height:   o.Height(),
		Unit:     scene.Percent,
		Fill:     o.Color,
		Radius:   o.BorderRadius(),
		Centered: true,
		Anim:     anim,
	}
}

// ProteinTrafficking builds the nucleus to ER to golgi diagram with five
// proteins staggered along the route.
func ProteinTrafficking() scene.Scene {
	els := make([]scene.Element, 0, len(TraffickingOrganelles)+5)
	for _, o := range TraffickingOrganelles {
		els = append(els, organelleElement(o, nil))
	}
	for i := 0; i < 5; i++ {
		els = append(els, scene.Element{
			Kind:     scene.KindProtein,
			Class:    "trafficking-protein",
			X:        50,
			Y:        50,
			Width:    8,
			Height:   8,
			Unit:     scene.Pixels,
			Fill:     "rgba(255, 214, 10, 0.8)",
			Radius:   "50%",
			Centered: true,
			Anim: &scene.Animation{
				Timeline: "proteinTrafficking",
				Duration: seconds(10),
				Delay:    seconds(float64(i) * 2),
			},
		})
	}
	return scene.Scene{Name: "protein", Elements: els}
}

// DefaultOrganelles returns the communication diagram's organelles.
func DefaultOrganelles() []scene.Organelle {
	return []scene.Organelle{
		{Name: "nucleus", X: 50, Y: 50, Size: 30, Color: "rgba(191, 90, 242, 0.4)"},
		{Name: "mitochondria", X: 25, Y: 40, Size: 20, Color: "rgba(255, 69, 58, 0.4)", Aspect: 0.6, Radius: "60% 40% 60% 40% / 40% 60% 40% 60%"},
		{Name: "lysosome", X: 70, Y: 30, Size: 15, Color: "rgba(255, 214, 10, 0.4)"},
		{Name: "peroxisome", X: 75, Y: 70, Size: 15, Color: "rgba(0, 214, 143, 0.4)"},
		{Name: "vacuole", X: 30, Y: 70, Size: 25, Color: "rgba(0, 194, 203, 0.4)"},
	}
}

// OrganelleDiagram builds the organelle communication diagram: pulsing
// organelles followed by a signal line and marker per pair. A nil orgs
// uses DefaultOrganelles and a zero cycle uses signal.Cycle.
func OrganelleDiagram(rng random.Source, orgs []scene.Organelle, cycle time.Duration) scene.Scene {
	if orgs == nil {
		orgs = DefaultOrganelles()
	}
	if cycle <= 0 {
		cycle = signal.Cycle
	}
	links := signal.LinksWithCycle(orgs, rng, cycle)
	els := make([]scene.Element, 0, len(orgs)+2*len(links))
	for _, o := range orgs {
		els = append(els, organelleElement(o, &scene.Animation{
			Timeline:  "organellePulse",
			Duration:  seconds(4),
			Alternate: true,
			Easing:    "ease-in-out",
		}))
	}
	els = append(els, signal.Elements(links)...)
	return scene.Scene{Name: "organelles", Elements: els}
}
