package scene

import (
	"fmt"
	"math"
	"time"
)

// Unit is the CSS length unit for an element's width and height.
type Unit string

const (
	Pixels  Unit = "px"
	Percent Unit = "%"
)

// Kind classifies an element for exporters that draw shapes.
type Kind string

const (
	KindParticle  Kind = "particle"
	KindCell      Kind = "cell"
	KindOrganelle Kind = "organelle"
	KindMembrane  Kind = "membrane"
	KindVesicle   Kind = "vesicle"
	KindProtein   Kind = "protein"
	KindLine      Kind = "line"
	KindMarker    Kind = "marker"
)

// Organelle is a named diagram node. X and Y are percent of the container.
type Organelle struct {
	Name   string  `yaml:"name" json:"name"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Size   float64 `yaml:"size" json:"size"`
	Color  string  `yaml:"color,omitempty" json:"color,omitempty"`
	Aspect float64 `yaml:"aspect,omitempty" json:"aspect,omitempty"`
	Radius string  `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// Height returns Size scaled by Aspect; a zero Aspect means round.
func (o Organelle) Height() float64 {
	if o.Aspect == 0 {
		return o.Size
	}
	return o.Size * o.Aspect
}

// BorderRadius returns Radius, defaulting to a circle.
func (o Organelle) BorderRadius() string {
	if o.Radius == "" {
		return "50%"
	}
	return o.Radius
}

// Animation references a pre-declared timeline by name.
type Animation struct {
	Timeline  string             `json:"timeline"`
	Duration  time.Duration      `json:"duration"`
	Delay     time.Duration      `json:"delay,omitempty"`
	Alternate bool               `json:"alternate,omitempty"`
	Easing    string             `json:"easing,omitempty"`
	Params    map[string]float64 `json:"params,omitempty"`
}

// Element is one positioned visual. X and Y are percent of the parent.
type Element struct {
	Kind   Kind    `json:"kind"`
	Class  string  `json:"class,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   Unit    `json:"unit"`
	// HeightUnit overrides Unit for Height when set.
	HeightUnit Unit       `json:"height_unit,omitempty"`
	Fill       string     `json:"fill,omitempty"`
	Border     string     `json:"border,omitempty"`
	Radius     string     `json:"radius,omitempty"`
	Opacity    float64    `json:"opacity,omitempty"`
	Rotate     float64    `json:"rotate,omitempty"`
	Scale      float64    `json:"scale,omitempty"`
	Origin     string     `json:"origin,omitempty"`
	Centered   bool       `json:"centered,omitempty"`
	Anim       *Animation `json:"animation,omitempty"`
	Children   []Element  `json:"children,omitempty"`
}

// HUnit returns the unit Height is measured in.
func (e Element) HUnit() Unit {
	if e.HeightUnit != "" {
		return e.HeightUnit
	}
	return e.Unit
}

// Scene is the output of one generator run.
type Scene struct {
	Name     string    `json:"name"`
	Elements []Element `json:"elements"`
	// Blur softens the whole scene by this many px.
	Blur float64 `json:"blur,omitempty"`
}

// Timelines returns the distinct timeline names used by the scene, in
// first-use order.
func (s Scene) Timelines() []string {
	seen := make(map[string]bool)
	var names []string
	var walk func([]Element)
	walk = func(els []Element) {
		for _, e := range els {
			if e.Anim != nil && !seen[e.Anim.Timeline] {
				seen[e.Anim.Timeline] = true
				names = append(names, e.Anim.Timeline)
			}
			walk(e.Children)
		}
	}
	walk(s.Elements)
	return names
}

// Count returns the number of elements of kind k, children included.
func (s Scene) Count(k Kind) int {
	n := 0
	var walk func([]Element)
	walk = func(els []Element) {
		for _, e := range els {
			if e.Kind == k {
				n++
			}
			walk(e.Children)
		}
	}
	walk(s.Elements)
	return n
}

// ValidateOrganelles checks the generator preconditions: finite values,
// coordinates in [0, 100] and unique names.
func ValidateOrganelles(orgs []Organelle) error {
	names := make(map[string]int, len(orgs))
	for i, o := range orgs {
		for _, f := range []struct {
			name string
			v    float64
		}{{"x", o.X}, {"y", o.Y}, {"size", o.Size}, {"aspect", o.Aspect}} {
			if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
				return &ValidationError{Index: i, Name: o.Name, Field: f.name, Wrapped: ErrNonFinite}
			}
		}
		if o.X < 0 || o.X > 100 {
			return &ValidationError{Index: i, Name: o.Name, Field: "x", Wrapped: ErrOutOfRange}
		}
		if o.Y < 0 || o.Y > 100 {
			return &ValidationError{Index: i, Name: o.Name, Field: "y", Wrapped: ErrOutOfRange}
		}
		if prev, ok := names[o.Name]; ok {
			return &ValidationError{Index: i, Name: o.Name, Wrapped: fmt.Errorf("%w (first at %d)", ErrDuplicateName, prev)}
		}
		names[o.Name] = i
	}
	return nil
}
