package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/labfx/internal/scene"
)

const frameInterval = time.Second / 30

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Preview plays a scene on a Braille canvas.
type Preview struct {
	scene   scene.Scene
	canvas  *Canvas
	styles  Styles
	elapsed time.Duration
	last    time.Time
	running bool
}

func NewPreview(s scene.Scene, theme Theme, width, height int) Preview {
	return Preview{
		scene:   s,
		canvas:  NewCanvas(width, height),
		styles:  NewStyles(theme),
		running: true,
	}
}

func (p Preview) Init() tea.Cmd {
	return tick()
}

func (p Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			p.running = !p.running
		case "r":
			p.elapsed = 0
		}
	case TickMsg:
		now := time.Time(msg)
		if p.running && !p.last.IsZero() {
			p.elapsed += now.Sub(p.last)
		}
		p.last = now
		return p, tick()
	}
	return p, nil
}

// Frame renders the canvas at the current playback time.
func (p Preview) Frame() string {
	p.canvas.Clear()
	DrawScene(p.canvas, p.scene, p.elapsed, 1)
	return p.canvas.String()
}

func (p Preview) View() string {
	var b strings.Builder
	status := "playing"
	if !p.running {
		status = "paused"
	}
	b.WriteString(p.styles.Title.Render(p.scene.Name))
	b.WriteString("  " + p.styles.Value.Render(fmt.Sprintf("%5.1fs %s", p.elapsed.Seconds(), status)) + "\n")
	b.WriteString(p.styles.Panel.Render(p.styles.Canvas.Render(p.Frame())))
	b.WriteString("\n" + p.styles.KeyHint.Render("space pause  r restart  q quit") + "\n")
	return b.String()
}

// Elapsed returns the playback time.
func (p Preview) Elapsed() time.Duration {
	return p.elapsed
}

// RunPreview runs the preview program until the user quits.
func RunPreview(s scene.Scene, theme Theme) error {
	_, err := tea.NewProgram(NewPreview(s, theme, 60, 20), tea.WithAltScreen()).Run()
	return err
}
