package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/labfx/internal/scene"
)

type box struct {
	x, y, w, h float64
}

func (b box) size(e scene.Element) (w, h float64) {
	if e.Unit == scene.Percent {
		return e.Width * b.w / 100, e.Height * b.h / 100
	}
	return e.Width, e.Height
}

// stroke splits a CSS border shorthand like "2px solid rgba(...)".
func stroke(border string) (width, color string) {
	parts := strings.SplitN(border, " ", 3)
	if len(parts) < 3 {
		return "", ""
	}
	return strings.TrimSuffix(parts[0], "px"), parts[2]
}

func writeShape(sb *strings.Builder, e scene.Element, parent box) {
	px := parent.x + e.X*parent.w/100
	py := parent.y + e.Y*parent.h/100
	uw, uh := parent.size(e)
	w, h := uw, uh
	if e.Scale != 0 {
		w, h = uw*e.Scale, uh*e.Scale
	}

	switch e.Kind {
	case scene.KindLine:
		rad := e.Rotate * math.Pi / 180
		ex := parent.x + (e.X+e.Width*math.Cos(rad))*parent.w/100
		ey := parent.y + (e.Y+e.Width*math.Sin(rad))*parent.h/100
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.0f"/>
`, px, py, ex, ey, e.Fill, e.Height))
		return
	case scene.KindMarker:
		writeMarker(sb, e, parent)
		return
	}

	// scale() keeps the element's centre fixed
	cx, cy := px+uw/2, py+uh/2
	if e.Centered {
		cx, cy = px, py
	}
	sb.WriteString(fmt.Sprintf(`<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f"`, cx, cy, w/2, h/2))
	fill := e.Fill
	if fill == "" {
		fill = "none"
	}
	sb.WriteString(fmt.Sprintf(` fill="%s"`, fill))
	if sw, sc := stroke(e.Border); sc != "" {
		sb.WriteString(fmt.Sprintf(` stroke="%s" stroke-width="%s"`, sc, sw))
	}
	if e.Opacity != 0 {
		sb.WriteString(fmt.Sprintf(` opacity="%.2f"`, e.Opacity))
	}
	sb.WriteString("/>\n")

	inner := box{x: cx - w/2, y: cy - h/2, w: w, h: h}
	for _, c := range e.Children {
		if e.Scale != 0 {
			if c.Scale == 0 {
				c.Scale = 1
			}
			c.Scale *= e.Scale
		}
		writeShape(sb, c, inner)
	}
}

// writeMarker draws a signal marker sweeping its path there and back.
func writeMarker(sb *strings.Builder, e scene.Element, parent box) {
	r := e.Width / 2
	a := e.Anim
	if a == nil || a.Timeline != "signalPath" {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, parent.x+e.X*parent.w/100, parent.y+e.Y*parent.h/100, r, e.Fill))
		return
	}
	x1 := parent.x + a.Params["from-x"]*parent.w/100
	y1 := parent.y + a.Params["from-y"]*parent.h/100
	x2 := parent.x + a.Params["to-x"]*parent.w/100
	y2 := parent.y + a.Params["to-y"]*parent.h/100
	dur := 2 * a.Duration.Seconds()
	begin := a.Delay.Seconds()

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s">
<animate attributeName="cx" values="%.1f;%.1f;%.1f" dur="%.3fs" begin="%.3fs" repeatCount="indefinite"/>
<animate attributeName="cy" values="%.1f;%.1f;%.1f" dur="%.3fs" begin="%.3fs" repeatCount="indefinite"/>
</circle>
`, x1, y1, r, e.Fill, x1, x2, x1, dur, begin, y1, y2, y1, dur, begin))
}

// SVG renders a snapshot of the scene at width x height pixels.
// Markers keep their travel animation; everything else is static.
func SVG(s scene.Scene, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a2540"/>
`, width, height, width, height))

	if s.Blur > 0 {
		sb.WriteString(fmt.Sprintf(`<filter id="blur"><feGaussianBlur stdDeviation="%.2f"/></filter>
<g filter="url(#blur)">
`, s.Blur))
	}
	root := box{w: float64(width), h: float64(height)}
	for _, e := range s.Elements {
		writeShape(&sb, e, root)
	}
	if s.Blur > 0 {
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
