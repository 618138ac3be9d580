// Package timeline holds the fixed set of named keyframe timelines.
//
// Timelines are declared once and parameterized per element through CSS
// custom properties, so rendering a scene never produces keyframe text
// for an individual element.
package timeline

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/labfx/internal/scene"
)

// Param is a per-element input to a timeline.
type Param struct {
	Name string
	Unit string
}

// Prop is a single CSS declaration inside a keyframe.
type Prop struct {
	Name  string
	Value string
}

// Frame is a keyframe at Offset percent of the cycle.
type Frame struct {
	Offset float64
	Props  []Prop
}

type Timeline struct {
	Name   string
	Params []Param
	Frames []Frame
}

// Var formats a param as a custom property declaration value.
func (p Param) Var(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + p.Unit
}

// Param returns the declared param by name.
func (t Timeline) Param(name string) (Param, bool) {
	for _, p := range t.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// WriteCSS writes the @keyframes block for t.
func (t Timeline) WriteCSS(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("@keyframes " + t.Name + " {\n")
	for _, f := range t.Frames {
		sb.WriteString("  " + strconv.FormatFloat(f.Offset, 'f', -1, 64) + "% {")
		for _, p := range f.Props {
			sb.WriteString(" " + p.Name + ": " + p.Value + ";")
		}
		sb.WriteString(" }\n")
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func useVar(name string) string {
	return "var(--" + name + ")"
}

var builtin = map[string]Timeline{
	"particleFloat": {
		Name:   "particleFloat",
		Params: []Param{{"opacity", ""}, {"spin", "deg"}},
		Frames: []Frame{
			{0, []Prop{{"transform", "translateY(0) rotate(0deg)"}, {"opacity", useVar("opacity")}}},
			{100, []Prop{{"transform", "translateY(-100px) rotate(" + useVar("spin") + ")"}, {"opacity", "0"}}},
		},
	},
	"cellDrift": {
		Name:   "cellDrift",
		Params: []Param{{"dx", "px"}, {"dy", "px"}, {"spin", "deg"}},
		Frames: []Frame{
			{0, []Prop{{"transform", "translate(0, 0) rotate(0deg)"}}},
			{50, []Prop{{"transform", "translate(" + useVar("dx") + ", " + useVar("dy") + ") rotate(" + useVar("spin") + ")"}}},
			{100, []Prop{{"transform", "translate(0, 0) rotate(0deg)"}}},
		},
	},
	"cellMovement": {
		Name: "cellMovement",
		Frames: []Frame{
			{0, []Prop{{"transform", "translate(0, 0) rotate(0deg)"}}},
			{25, []Prop{{"transform", "translate(10px, 5px) rotate(5deg)"}}},
			{50, []Prop{{"transform", "translate(0, 10px) rotate(0deg)"}}},
			{75, []Prop{{"transform", "translate(-10px, 5px) rotate(-5deg)"}}},
			{100, []Prop{{"transform", "translate(0, 0) rotate(0deg)"}}},
		},
	},
	"organelleMovement": {
		Name: "organelleMovement",
		Frames: []Frame{
			{0, []Prop{{"transform", "translate(0, 0)"}}},
			{100, []Prop{{"transform", "translate(5px, 5px)"}}},
		},
	},
	"vesicleMovement": {
		Name: "vesicleMovement",
		Frames: []Frame{
			{0, []Prop{{"left", "20%"}, {"top", "50%"}}},
			{25, []Prop{{"left", "40%"}, {"top", "30%"}}},
			{50, []Prop{{"left", "60%"}, {"top", "50%"}}},
			{75, []Prop{{"left", "80%"}, {"top", "70%"}}},
			{100, []Prop{{"left", "90%"}, {"top", "50%"}, {"opacity", "0"}}},
		},
	},
	"membranePulse": {
		Name: "membranePulse",
		Frames: []Frame{
			{0, []Prop{{"transform", "scale(1)"}}},
			{100, []Prop{{"transform", "scale(1.05)"}}},
		},
	},
	"proteinFloat": {
		Name: "proteinFloat",
		Frames: []Frame{
			{0, []Prop{{"transform", "translate(-50%, -50%) rotate(0deg)"}}},
			{100, []Prop{{"transform", "translate(-50%, -50%) rotate(360deg) scale(1.2)"}}},
		},
	},
	"proteinTrafficking": {
		Name: "proteinTrafficking",
		Frames: []Frame{
			{0, []Prop{{"top", "50%"}, {"left", "50%"}, {"background-color", "rgba(255, 214, 10, 0.8)"}}},
			{20, []Prop{{"top", "50%"}, {"left", "50%"}, {"background-color", "rgba(255, 214, 10, 0.8)"}}},
			{30, []Prop{{"top", "70%"}, {"left", "30%"}, {"background-color", "rgba(0, 194, 203, 0.8)"}}},
			{50, []Prop{{"top", "70%"}, {"left", "30%"}, {"background-color", "rgba(0, 194, 203, 0.8)"}}},
			{60, []Prop{{"top", "60%"}, {"left", "70%"}, {"background-color", "rgba(0, 214, 143, 0.8)"}}},
			{80, []Prop{{"top", "60%"}, {"left", "70%"}, {"background-color", "rgba(0, 214, 143, 0.8)"}}},
			{90, []Prop{{"top", "20%"}, {"left", "80%"}, {"background-color", "rgba(255, 69, 58, 0.8)"}}},
			{100, []Prop{{"top", "20%"}, {"left", "80%"}, {"opacity", "0"}}},
		},
	},
	"organellePulse": {
		Name: "organellePulse",
		Frames: []Frame{
			{0, []Prop{{"transform", "translate(-50%, -50%) scale(1)"}}},
			{100, []Prop{{"transform", "translate(-50%, -50%) scale(1.1)"}}},
		},
	},
	"signalPath": {
		Name:   "signalPath",
		Params: []Param{{"from-x", "%"}, {"from-y", "%"}, {"to-x", "%"}, {"to-y", "%"}},
		Frames: []Frame{
			{0, []Prop{{"top", useVar("from-y")}, {"left", useVar("from-x")}}},
			{100, []Prop{{"top", useVar("to-y")}, {"left", useVar("to-x")}}},
		},
	},
}

// Lookup returns the timeline registered under name.
func Lookup(name string) (Timeline, bool) {
	t, ok := builtin[name]
	return t, ok
}

// Names returns every declared timeline name, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the timelines for names, failing on the first unknown one.
func Resolve(names []string) ([]Timeline, error) {
	out := make([]Timeline, 0, len(names))
	for _, name := range names {
		t, ok := builtin[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", scene.ErrUnknownTimeline, name)
		}
		out = append(out, t)
	}
	return out, nil
}

// Check verifies that anim names a declared timeline and supplies
// exactly its params.
func Check(anim *scene.Animation) error {
	t, ok := builtin[anim.Timeline]
	if !ok {
		return fmt.Errorf("%w: %s", scene.ErrUnknownTimeline, anim.Timeline)
	}
	for _, p := range t.Params {
		if _, ok := anim.Params[p.Name]; !ok {
			return fmt.Errorf("timeline %s: missing param %q", t.Name, p.Name)
		}
	}
	for name := range anim.Params {
		if _, ok := t.Param(name); !ok {
			return fmt.Errorf("timeline %s: unexpected param %q", t.Name, name)
		}
	}
	return nil
}
