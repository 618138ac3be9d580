package metrics

import (
	"math"

	"github.com/san-kum/labfx/internal/signal"
)

// DelaySpread is the population standard deviation of marker start
// delays, in seconds. Near zero means the markers pulse in lockstep.
type DelaySpread struct {
	name    string
	sum     float64
	sumSq   float64
	samples int
}

func NewDelaySpread() *DelaySpread {
	return &DelaySpread{
		name: "delay_spread",
	}
}

func (d *DelaySpread) Name() string {
	return d.name
}

func (d *DelaySpread) Observe(l signal.Link) {
	s := l.Marker.Delay.Seconds()
	d.sum += s
	d.sumSq += s * s
	d.samples++
}

func (d *DelaySpread) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	n := float64(d.samples)
	mean := d.sum / n
	v := d.sumSq/n - mean*mean
	if v < 0 {
		return 0
	}
	return math.Sqrt(v)
}

func (d *DelaySpread) Reset() {
	d.sum = 0
	d.sumSq = 0
	d.samples = 0
}
