package microscope

import (
	"testing"
	"time"

	"github.com/san-kum/labfx/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	tests := []struct {
		value int
		want  float64
	}{
		{0, 0.5},
		{50, 1.25},
		{100, 2.0},
		{150, 2.0},
		{-10, 0.5},
	}
	for _, tt := range tests {
		m := New(tt.value, 50)
		assert.InDelta(t, tt.want, m.Scale(), 1e-9, "magnification %d", tt.value)
	}
}

func TestLabel(t *testing.T) {
	m := New(40, 0)
	assert.Equal(t, "Magnification: 40x", m.Label())
}

func TestBlur(t *testing.T) {
	m := New(0, 0)
	assert.InDelta(t, 10.0, m.Blur(), 1e-9)
	m.SetFocus(100)
	assert.InDelta(t, 0.0, m.Blur(), 1e-9)
	m.SetFocus(35)
	assert.InDelta(t, 6.5, m.Blur(), 1e-9)
}

func TestToggleStain(t *testing.T) {
	m := New(50, 50)
	fill, border := m.CellColors()
	assert.Equal(t, plainFill, fill)
	assert.Equal(t, plainBorder, border)

	m.ToggleStain()
	fill, border = m.CellColors()
	assert.Equal(t, stainedFill, fill)
	assert.Equal(t, stainedBorder, border)

	m.ToggleStain()
	assert.False(t, m.Stained)
}

func TestTimeLapse(t *testing.T) {
	m := New(50, 50)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, NormalCycle, m.AnimationDuration(start))

	m.TimeLapse(start)
	assert.Equal(t, LapseCycle, m.AnimationDuration(start))
	assert.Equal(t, LapseCycle, m.AnimationDuration(start.Add(4999*time.Millisecond)))
	assert.Equal(t, NormalCycle, m.AnimationDuration(start.Add(LapseDuration)))

	m.TimeLapse(start.Add(3 * time.Second))
	assert.True(t, m.Lapsing(start.Add(7*time.Second)))
}

func TestStyle(t *testing.T) {
	m := New(100, 50)
	m.ToggleStain()
	now := time.Now()
	m.TimeLapse(now)

	s := m.Style(now)
	require.Len(t, s.Slide, 1)
	assert.Equal(t, Declaration{"filter", "blur(5px)"}, s.Slide[0])

	require.Len(t, s.Cell, 4)
	assert.Equal(t, "scale(2)", s.Cell[0].Value)
	assert.Equal(t, stainedFill, s.Cell[1].Value)
	assert.Equal(t, stainedBorder, s.Cell[2].Value)
	assert.Equal(t, "2s", s.Cell[3].Value)
}

func slide() scene.Scene {
	return scene.Scene{Name: "microscope", Elements: []scene.Element{
		{
			Kind: scene.KindCell, Width: 60, Height: 60, Unit: scene.Pixels,
			Fill: plainFill, Border: "2px solid " + plainBorder,
			Anim:     &scene.Animation{Timeline: "cellMovement", Duration: NormalCycle},
			Children: []scene.Element{{Kind: scene.KindOrganelle, Fill: "rgba(0, 194, 203, 0.3)"}},
		},
	}}
}

func TestApply(t *testing.T) {
	m := New(100, 0)
	m.ToggleStain()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.TimeLapse(now)

	in := slide()
	out := m.Apply(in, now)

	assert.Equal(t, "microscope", out.Name)
	assert.InDelta(t, 10.0, out.Blur, 1e-9)
	require.Len(t, out.Elements, 1)

	cell := out.Elements[0]
	assert.InDelta(t, 2.0, cell.Scale, 1e-9)
	assert.Equal(t, stainedFill, cell.Fill)
	assert.Equal(t, "2px solid "+stainedBorder, cell.Border)
	assert.Equal(t, LapseCycle, cell.Anim.Duration)
	assert.Equal(t, "rgba(0, 194, 203, 0.3)", cell.Children[0].Fill)

	assert.Equal(t, 0.0, in.Elements[0].Scale)
	assert.Equal(t, NormalCycle, in.Elements[0].Anim.Duration, "input slide must not change")
}

func TestApplyDefaults(t *testing.T) {
	out := New(50, 50).Apply(slide(), time.Now())
	cell := out.Elements[0]
	assert.InDelta(t, 1.25, cell.Scale, 1e-9)
	assert.Equal(t, plainFill, cell.Fill)
	assert.Equal(t, NormalCycle, cell.Anim.Duration)
	assert.InDelta(t, 5.0, out.Blur, 1e-9)
}

func TestRecolor(t *testing.T) {
	assert.Equal(t, "3px dashed red", recolor("3px dashed blue", "red"))
	assert.Equal(t, "1px solid red", recolor("", "red"))
}
