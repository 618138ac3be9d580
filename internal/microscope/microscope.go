// Package microscope maps the virtual microscope controls onto the CSS
// properties of the slide and its cells.
package microscope

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/labfx/internal/scene"
)

const (
	// LapseDuration is how long a time-lapse keeps cells sped up.
	LapseDuration = 5 * time.Second

	NormalCycle = 10 * time.Second
	LapseCycle  = 2 * time.Second
)

const (
	plainFill     = "rgba(0, 194, 203, 0.1)"
	plainBorder   = "rgba(0, 194, 203, 0.4)"
	stainedFill   = "rgba(191, 90, 242, 0.1)"
	stainedBorder = "rgba(191, 90, 242, 0.4)"
)

type Microscope struct {
	Magnification int
	Focus         int
	Stained       bool
	lapseUntil    time.Time
}

// New returns a microscope with both sliders at their initial values.
func New(magnification, focus int) *Microscope {
	m := &Microscope{}
	m.SetMagnification(magnification)
	m.SetFocus(focus)
	return m
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (m *Microscope) SetMagnification(v int) { m.Magnification = clamp(v) }
func (m *Microscope) SetFocus(v int)         { m.Focus = clamp(v) }

// Scale maps magnification 0..100 onto a cell scale of 0.5..2.
func (m *Microscope) Scale() float64 {
	return 0.5 + float64(m.Magnification)/100*1.5
}

// Label is the data overlay text for the current magnification.
func (m *Microscope) Label() string {
	return fmt.Sprintf("Magnification: %dx", m.Magnification)
}

// Blur maps focus 0..100 onto a slide blur of 10..0 px.
func (m *Microscope) Blur() float64 {
	return 10 - float64(m.Focus)/10
}

func (m *Microscope) ToggleStain() {
	m.Stained = !m.Stained
}

// CellColors returns the cell background and border for the stain state.
func (m *Microscope) CellColors() (fill, border string) {
	if m.Stained {
		return stainedFill, stainedBorder
	}
	return plainFill, plainBorder
}

// TimeLapse speeds the cells up for LapseDuration from now. Pressing it
// again restarts the window.
func (m *Microscope) TimeLapse(now time.Time) {
	m.lapseUntil = now.Add(LapseDuration)
}

// Lapsing reports whether a time-lapse is running at now.
func (m *Microscope) Lapsing(now time.Time) bool {
	return now.Before(m.lapseUntil)
}

// AnimationDuration is the cell movement cycle at now.
func (m *Microscope) AnimationDuration(now time.Time) time.Duration {
	if m.Lapsing(now) {
		return LapseCycle
	}
	return NormalCycle
}

// Declaration is one CSS property assignment.
type Declaration struct {
	Property string
	Value    string
}

// Style holds the declarations applied to the slide and to every cell.
type Style struct {
	Slide []Declaration
	Cell  []Declaration
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Style returns the CSS the controls produce at now.
func (m *Microscope) Style(now time.Time) Style {
	fill, border := m.CellColors()
	return Style{
		Slide: []Declaration{
			{"filter", "blur(" + ftoa(m.Blur()) + "px)"},
		},
		Cell: []Declaration{
			{"transform", "scale(" + ftoa(m.Scale()) + ")"},
			{"background-color", fill},
			{"border-color", border},
			{"animation-duration", ftoa(m.AnimationDuration(now).Seconds()) + "s"},
		},
	}
}

// recolor swaps the color of a "<width> <style> <color>" border.
func recolor(border, color string) string {
	parts := strings.SplitN(border, " ", 3)
	if len(parts) < 3 {
		return "1px solid " + color
	}
	return parts[0] + " " + parts[1] + " " + color
}

// Apply returns slide as the controls show it at now. Top-level cells are
// scaled, recolored and retimed, and the slide is blurred. slide is not
// modified.
func (m *Microscope) Apply(slide scene.Scene, now time.Time) scene.Scene {
	fill, border := m.CellColors()
	out := scene.Scene{
		Name:     slide.Name,
		Elements: make([]scene.Element, len(slide.Elements)),
		Blur:     m.Blur(),
	}
	for i, e := range slide.Elements {
		if e.Kind == scene.KindCell {
			e.Scale = m.Scale()
			e.Fill = fill
			e.Border = recolor(e.Border, border)
			if e.Anim != nil {
				anim := *e.Anim
				anim.Duration = m.AnimationDuration(now)
				e.Anim = &anim
			}
		}
		out.Elements[i] = e
	}
	return out
}
