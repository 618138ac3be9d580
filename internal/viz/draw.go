package viz

import (
	"math"
	"time"

	"github.com/san-kum/labfx/internal/scene"
	"github.com/san-kum/labfx/internal/signal"
)

// ContainerPixels is the CSS width assumed when mapping pixel sizes
// onto the canvas.
const ContainerPixels = 400.0

type region struct {
	x, y, w, h float64 // dots
}

// MarkerOf recovers the travelling marker an element animates along.
func MarkerOf(e scene.Element) (signal.Marker, bool) {
	if e.Anim == nil || e.Anim.Timeline != "signalPath" {
		return signal.Marker{}, false
	}
	p := e.Anim.Params
	return signal.Marker{
		FromX: p["from-x"], FromY: p["from-y"],
		ToX: p["to-x"], ToY: p["to-y"],
		Cycle: e.Anim.Duration,
		Delay: e.Anim.Delay,
	}, true
}

// progress is the fraction of the current cycle completed at elapsed, or
// zero before the animation starts.
func progress(a *scene.Animation, elapsed time.Duration) float64 {
	t := elapsed - a.Delay
	if t <= 0 || a.Duration <= 0 {
		return 0
	}
	return float64(t%a.Duration) / float64(a.Duration)
}

// DrawScene renders s onto c as it would look elapsed into playback.
// scale multiplies every element size, about its own centre. A scene
// blur masks the canvas unless it already has a mask.
func DrawScene(c *Canvas, s scene.Scene, elapsed time.Duration, scale float64) {
	if s.Blur > 0 && c.Mask == nil {
		c.Mask = BlurMask(s.Blur)
	}
	w, h := c.Dots()
	root := region{w: float64(w), h: float64(h)}
	px := float64(w) / ContainerPixels
	for _, e := range s.Elements {
		drawElement(c, e, root, px, elapsed, scale)
	}
}

func drawElement(c *Canvas, e scene.Element, parent region, px float64, elapsed time.Duration, scale float64) {
	x := parent.x + e.X/100*parent.w
	y := parent.y + e.Y/100*parent.h

	switch e.Kind {
	case scene.KindLine:
		rad := e.Rotate * math.Pi / 180
		ex := parent.x + (e.X+e.Width*math.Cos(rad))/100*parent.w
		ey := parent.y + (e.Y+e.Width*math.Sin(rad))/100*parent.h
		c.DrawLine(int(x), int(y), int(ex), int(ey))
		return
	case scene.KindMarker:
		if m, ok := MarkerOf(e); ok {
			mx, my := m.At(elapsed)
			x = parent.x + mx/100*parent.w
			y = parent.y + my/100*parent.h
		}
		c.FillDisc(int(x), int(y), 1)
		return
	case scene.KindParticle:
		if e.Anim != nil {
			y -= 100 * px * progress(e.Anim, elapsed)
		}
		c.Set(int(x), int(y))
		return
	}

	ew, eh := e.Width*px, e.Height*px
	if e.Unit == scene.Percent {
		ew, eh = e.Width/100*parent.w, e.Height/100*parent.h
	}
	cx, cy := x+ew/2, y+eh/2
	if e.Centered {
		cx, cy = x, y
	}
	if e.Scale != 0 {
		scale *= e.Scale
	}
	ew, eh = ew*scale, eh*scale
	c.DrawEllipse(int(math.Round(cx)), int(math.Round(cy)), ew/2, eh/2)

	inner := region{x: cx - ew/2, y: cy - eh/2, w: ew, h: eh}
	for _, child := range e.Children {
		drawElement(c, child, inner, px*scale, elapsed, 1)
	}
}
