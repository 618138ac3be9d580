package export

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/labfx/internal/scene"
	"github.com/san-kum/labfx/internal/timeline"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func secs(d time.Duration) string {
	return num(d.Seconds()) + "s"
}

// Stylesheet renders the keyframes for the named timelines.
func Stylesheet(names []string) (string, error) {
	tls, err := timeline.Resolve(names)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, t := range tls {
		if i > 0 {
			sb.WriteString("\n")
		}
		if err := t.WriteCSS(&sb); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// InlineStyle returns the style attribute value for e.
func InlineStyle(e scene.Element) (string, error) {
	decls := []string{
		"position: absolute",
		"top: " + num(e.Y) + "%",
		"left: " + num(e.X) + "%",
		"width: " + num(e.Width) + string(e.Unit),
		"height: " + num(e.Height) + string(e.HUnit()),
	}
	if e.Fill != "" {
		decls = append(decls, "background-color: "+e.Fill)
	}
	if e.Border != "" {
		decls = append(decls, "border: "+e.Border)
	}
	if e.Radius != "" {
		decls = append(decls, "border-radius: "+e.Radius)
	}
	if e.Opacity != 0 {
		decls = append(decls, "opacity: "+num(e.Opacity))
	}

	var transform []string
	if e.Centered {
		transform = append(transform, "translate(-50%, -50%)")
	}
	if e.Rotate != 0 {
		transform = append(transform, "rotate("+num(e.Rotate)+"deg)")
	}
	if e.Scale != 0 && e.Scale != 1 {
		transform = append(transform, "scale("+num(e.Scale)+")")
	}
	if e.Origin != "" {
		decls = append(decls, "transform-origin: "+e.Origin)
	}
	if len(transform) > 0 {
		decls = append(decls, "transform: "+strings.Join(transform, " "))
	}
	if e.Kind == scene.KindParticle {
		decls = append(decls, "pointer-events: none")
	}

	if a := e.Anim; a != nil {
		tl, ok := timeline.Lookup(a.Timeline)
		if !ok {
			return "", fmt.Errorf("%w: %s", scene.ErrUnknownTimeline, a.Timeline)
		}
		anim := a.Timeline + " " + secs(a.Duration) + " infinite"
		if a.Alternate {
			anim += " alternate"
		}
		if a.Easing != "" {
			anim += " " + a.Easing
		}
		decls = append(decls, "animation: "+anim)
		if a.Delay > 0 {
			decls = append(decls, "animation-delay: "+secs(a.Delay))
		}
		for _, p := range tl.Params {
			v, ok := a.Params[p.Name]
			if !ok {
				return "", fmt.Errorf("timeline %s: missing param %q", tl.Name, p.Name)
			}
			decls = append(decls, "--"+p.Name+": "+p.Var(v))
		}
	}
	return strings.Join(decls, "; ") + ";", nil
}

func writeElement(sb *strings.Builder, e scene.Element, depth int) error {
	style, err := InlineStyle(e)
	if err != nil {
		return err
	}
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent + "<div")
	if e.Class != "" {
		sb.WriteString(` class="` + html.EscapeString(e.Class) + `"`)
	}
	sb.WriteString(` style="` + html.EscapeString(style) + `">`)
	if len(e.Children) == 0 {
		sb.WriteString("</div>\n")
		return nil
	}
	sb.WriteString("\n")
	for _, c := range e.Children {
		if err := writeElement(sb, c, depth+1); err != nil {
			return err
		}
	}
	sb.WriteString(indent + "</div>\n")
	return nil
}

// HTML renders the scene's elements as absolutely positioned divs.
func HTML(s scene.Scene) (string, error) {
	var sb strings.Builder
	root := "position: relative; overflow: hidden;"
	if s.Blur > 0 {
		root += " filter: blur(" + num(s.Blur) + "px);"
	}
	sb.WriteString(`<div class="labfx-` + html.EscapeString(s.Name) + `" style="` + root + `">` + "\n")
	for _, e := range s.Elements {
		if err := writeElement(&sb, e, 1); err != nil {
			return "", err
		}
	}
	sb.WriteString("</div>\n")
	return sb.String(), nil
}

// Document renders a standalone fragment: one style block with every
// timeline the scene uses, followed by the elements.
func Document(s scene.Scene) (string, error) {
	css, err := Stylesheet(s.Timelines())
	if err != nil {
		return "", err
	}
	body, err := HTML(s)
	if err != nil {
		return "", err
	}
	return "<style>\n" + css + "</style>\n" + body, nil
}
