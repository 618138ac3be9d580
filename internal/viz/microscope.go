package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/labfx/internal/microscope"
	"github.com/san-kum/labfx/internal/scene"
)

const sliderStep = 5

// cellPath is the cellMovement keyframe offsets in px at 0, 25, 50, 75
// and 100 percent.
var cellPath = [5][2]float64{{0, 0}, {10, 5}, {0, 10}, {-10, 5}, {0, 0}}

// CellOffset samples cellMovement after phase cycles, alternating.
func CellOffset(phase float64) (dx, dy float64) {
	p := math.Mod(phase, 2)
	if p < 0 {
		p += 2
	}
	if p > 1 {
		p = 2 - p
	}
	seg := p * 4
	i := int(seg)
	if i >= 4 {
		return cellPath[4][0], cellPath[4][1]
	}
	f := seg - float64(i)
	a, b := cellPath[i], cellPath[i+1]
	return a[0] + (b[0]-a[0])*f, a[1] + (b[1]-a[1])*f
}

// BlurMask drops a share of dots that grows with blur px.
func BlurMask(blur float64) func(x, y int) bool {
	if blur <= 0 {
		return nil
	}
	drop := uint32(blur * 6)
	return func(x, y int) bool {
		h := uint32(x)*73856093 ^ uint32(y)*19349663
		return h%100 >= drop
	}
}

// MicroscopeApp is the interactive virtual microscope.
type MicroscopeApp struct {
	scope  *microscope.Microscope
	slide  scene.Scene
	canvas *Canvas
	plain  Styles
	dyed   Styles
	phase  float64
	now    time.Time
	last   time.Time
}

func NewMicroscopeApp(scope *microscope.Microscope, slide scene.Scene, theme Theme) MicroscopeApp {
	return MicroscopeApp{
		scope:  scope,
		slide:  slide,
		canvas: NewCanvas(48, 18),
		plain:  NewStyles(theme),
		dyed:   NewStyles(ThemeStained),
	}
}

func (m MicroscopeApp) Init() tea.Cmd {
	return tick()
}

func (m MicroscopeApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "h", "left":
			m.scope.SetMagnification(m.scope.Magnification - sliderStep)
		case "l", "right":
			m.scope.SetMagnification(m.scope.Magnification + sliderStep)
		case "j", "down":
			m.scope.SetFocus(m.scope.Focus - sliderStep)
		case "k", "up":
			m.scope.SetFocus(m.scope.Focus + sliderStep)
		case "s":
			m.scope.ToggleStain()
		case "t":
			m.scope.TimeLapse(m.now)
		}
	case TickMsg:
		m = m.Advance(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

// Advance moves the cell animation forward to now at the current speed.
func (m MicroscopeApp) Advance(now time.Time) MicroscopeApp {
	if !m.last.IsZero() {
		dt := now.Sub(m.last)
		m.phase += float64(dt) / float64(m.scope.AnimationDuration(now))
	}
	m.last = now
	m.now = now
	return m
}

// Phase returns the number of cell movement cycles played so far.
func (m MicroscopeApp) Phase() float64 {
	return m.phase
}

func (m MicroscopeApp) styles() Styles {
	if m.scope.Stained {
		return m.dyed
	}
	return m.plain
}

// Frame renders the slide with the current controls applied.
func (m MicroscopeApp) Frame() string {
	dx, dy := CellOffset(m.phase)
	moved := scene.Scene{Name: m.slide.Name, Elements: make([]scene.Element, len(m.slide.Elements))}
	for i, e := range m.slide.Elements {
		e.X += dx / ContainerPixels * 100
		e.Y += dy / ContainerPixels * 100
		moved.Elements[i] = e
	}

	m.canvas.Clear()
	m.canvas.Mask = BlurMask(m.scope.Blur())
	DrawScene(m.canvas, moved, 0, m.scope.Scale())
	return m.canvas.String()
}

func (m MicroscopeApp) View() string {
	st := m.styles()

	var panel strings.Builder
	panel.WriteString(st.Title.Render(m.scope.Label()) + "\n\n")
	panel.WriteString(st.Label.Render("magnification") + st.Bar.Render(SliderBar(m.scope.Magnification, 20)) + "\n")
	panel.WriteString(st.Label.Render("focus") + st.Bar.Render(SliderBar(m.scope.Focus, 20)) + "\n")
	stain := "off"
	if m.scope.Stained {
		stain = "on"
	}
	panel.WriteString(st.Label.Render("stain") + st.Value.Render(stain) + "\n")
	lapse := "off"
	if m.scope.Lapsing(m.now) {
		lapse = st.Active.Render("running")
	}
	panel.WriteString(st.Label.Render("time-lapse") + st.Value.Render(lapse) + "\n")
	panel.WriteString(Separator(36) + "\n")

	style := m.scope.Style(m.now)
	for _, d := range style.Slide {
		panel.WriteString(st.Value.Render(fmt.Sprintf(".slide { %s: %s }", d.Property, d.Value)) + "\n")
	}
	for _, d := range style.Cell {
		panel.WriteString(st.Value.Render(fmt.Sprintf(".cell  { %s: %s }", d.Property, d.Value)) + "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Panel.Render(st.Canvas.Render(m.Frame())),
		st.Panel.Render(panel.String()),
	)
	return body + "\n" + st.KeyHint.Render("h/l magnify  j/k focus  s stain  t time-lapse  q quit") + "\n"
}

// RunMicroscope runs the microscope program until the user quits.
func RunMicroscope(scope *microscope.Microscope, slide scene.Scene, theme Theme) error {
	_, err := tea.NewProgram(NewMicroscopeApp(scope, slide, theme), tea.WithAltScreen()).Run()
	return err
}
