// Package signal computes the connecting lines and travelling markers
// drawn between organelles in the communication diagram.
package signal

import (
	"math"
	"time"

	"github.com/san-kum/labfx/internal/random"
	"github.com/san-kum/labfx/internal/scene"
)

// Cycle is the time a marker takes to travel one way along a link.
const Cycle = 2 * time.Second

const (
	lineColor   = "rgba(255, 255, 255, 0.1)"
	markerColor = "rgba(255, 255, 255, 0.8)"
	markerSize  = 6.0
)

// Line anchors a horizontal segment at the origin and rotates it to
// point at the far end.
type Line struct {
	OriginX      float64
	OriginY      float64
	Length       float64
	AngleDegrees float64
}

// Marker moves linearly from (FromX, FromY) to (ToX, ToY) over Cycle,
// reversing direction every cycle, starting Delay late.
type Marker struct {
	FromX, FromY float64
	ToX, ToY     float64
	Cycle        time.Duration
	Delay        time.Duration
}

type Link struct {
	ID     string
	From   string
	To     string
	Line   Line
	Marker Marker
}

// Measure returns the line from a to b.
func Measure(a, b scene.Organelle) Line {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return Line{
		OriginX:      a.X,
		OriginY:      a.Y,
		Length:       math.Sqrt(dx*dx + dy*dy),
		AngleDegrees: math.Atan2(dy, dx) * 180 / math.Pi,
	}
}

// Links returns one link per unordered pair, A before B in input order.
// Names are assumed unique; IDs collide otherwise.
func Links(orgs []scene.Organelle, rng random.Source) []Link {
	return LinksWithCycle(orgs, rng, Cycle)
}

// LinksWithCycle is Links with a custom one-way travel time.
func LinksWithCycle(orgs []scene.Organelle, rng random.Source, cycle time.Duration) []Link {
	if len(orgs) < 2 {
		return nil
	}
	links := make([]Link, 0, len(orgs)*(len(orgs)-1)/2)
	for i := 0; i < len(orgs); i++ {
		for j := i + 1; j < len(orgs); j++ {
			a, b := orgs[i], orgs[j]
			links = append(links, Link{
				ID:   "signal" + a.Name + "To" + b.Name,
				From: a.Name,
				To:   b.Name,
				Line: Measure(a, b),
				Marker: Marker{
					FromX: a.X, FromY: a.Y,
					ToX: b.X, ToY: b.Y,
					Cycle: cycle,
					Delay: time.Duration(rng.Float64() * float64(cycle)),
				},
			})
		}
	}
	return links
}

// At returns the marker position elapsed after the diagram starts.
// Before the delay has passed the marker rests at its origin.
func (m Marker) At(elapsed time.Duration) (x, y float64) {
	t := elapsed - m.Delay
	if t <= 0 || m.Cycle <= 0 {
		return m.FromX, m.FromY
	}
	n := t / m.Cycle
	frac := float64(t%m.Cycle) / float64(m.Cycle)
	if n%2 == 1 {
		frac = 1 - frac
	}
	return m.FromX + (m.ToX-m.FromX)*frac, m.FromY + (m.ToY-m.FromY)*frac
}

// Elements renders each link as a line element followed by its marker.
func Elements(links []Link) []scene.Element {
	els := make([]scene.Element, 0, 2*len(links))
	for _, l := range links {
		els = append(els, scene.Element{
			Kind:   scene.KindLine,
			Class:  "signal-line",
			X:      l.Line.OriginX,
			Y:      l.Line.OriginY,
			Width:  l.Line.Length,
			Height: 1,
			Unit:   scene.Percent,
			// The length is a share of the container; the thickness is not.
			HeightUnit: scene.Pixels,
			Fill:       lineColor,
			Rotate:     l.Line.AngleDegrees,
			Origin:     "left center",
		})
		els = append(els, scene.Element{
			Kind:   scene.KindMarker,
			Class:  "signal-particle",
			X:      l.Marker.FromX,
			Y:      l.Marker.FromY,
			Width:  markerSize,
			Height: markerSize,
			Unit:   scene.Pixels,
			Fill:   markerColor,
			Radius: "50%",
			Anim: &scene.Animation{
				Timeline:  "signalPath",
				Duration:  l.Marker.Cycle,
				Delay:     l.Marker.Delay,
				Alternate: true,
				Easing:    "linear",
				Params: map[string]float64{
					"from-x": l.Marker.FromX,
					"from-y": l.Marker.FromY,
					"to-x":   l.Marker.ToX,
					"to-y":   l.Marker.ToY,
				},
			},
		})
	}
	return els
}
