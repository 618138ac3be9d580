package signal_test

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/labfx/internal/random"
	"github.com/san-kum/labfx/internal/scene"
	"github.com/san-kum/labfx/internal/signal"
	"github.com/san-kum/labfx/internal/timeline"
)

func organelles(n int) []scene.Organelle {
	orgs := make([]scene.Organelle, n)
	for i := range orgs {
		orgs[i] = scene.Organelle{
			Name: fmt.Sprintf("org%d", i),
			X:    float64(i*17%100) + 0.5,
			Y:    float64(i*31%100) + 0.25,
			Size: 10,
		}
	}
	return orgs
}

var _ = Describe("Links", func() {
	var rng random.Source

	BeforeEach(func() {
		rng = random.New(42)
	})

	DescribeTable("produces n(n-1)/2 links",
		func(n, want int) {
			Expect(signal.Links(organelles(n), rng)).To(HaveLen(want))
		},
		Entry("no organelles", 0, 0),
		Entry("one organelle", 1, 0),
		Entry("two organelles", 2, 1),
		Entry("five organelles", 5, 10),
		Entry("twelve organelles", 12, 66),
	)

	It("visits every unordered pair once, in input order", func() {
		orgs := organelles(6)
		links := signal.Links(orgs, rng)

		index := make(map[string]int, len(orgs))
		for i, o := range orgs {
			index[o.Name] = i
		}
		seen := make(map[[2]string]bool)
		for _, l := range links {
			Expect(index[l.From]).To(BeNumerically("<", index[l.To]))
			key := [2]string{l.From, l.To}
			rev := [2]string{l.To, l.From}
			Expect(seen).NotTo(HaveKey(key))
			Expect(seen).NotTo(HaveKey(rev))
			seen[key] = true
		}
		Expect(seen).To(HaveLen(15))
	})

	It("names each link after its endpoints", func() {
		orgs := []scene.Organelle{{Name: "nucleus", X: 50, Y: 50}, {Name: "vacuole", X: 30, Y: 70}}
		links := signal.Links(orgs, rng)
		Expect(links).To(HaveLen(1))
		Expect(links[0].ID).To(Equal("signalnucleusTovacuole"))
	})

	It("returns nil for an empty input without panicking", func() {
		Expect(signal.Links(nil, rng)).To(BeEmpty())
	})

	It("draws a delay within one cycle", func() {
		for _, l := range signal.Links(organelles(8), rng) {
			Expect(l.Marker.Delay).To(BeNumerically(">=", 0))
			Expect(l.Marker.Delay).To(BeNumerically("<", signal.Cycle))
			Expect(l.Marker.Cycle).To(Equal(signal.Cycle))
		}
	})

	It("is reproducible for a fixed seed", func() {
		a := signal.Links(organelles(5), random.New(9))
		b := signal.Links(organelles(5), random.New(9))
		Expect(a).To(Equal(b))
	})

	It("takes the delay from the injected source", func() {
		src := &random.Fixed{Values: []float64{0.5}}
		links := signal.Links(organelles(2), src)
		Expect(links[0].Marker.Delay).To(Equal(time.Second))
	})
})

var _ = Describe("Measure", func() {
	DescribeTable("geometry",
		func(ax, ay, bx, by, length, angle float64) {
			l := signal.Measure(scene.Organelle{X: ax, Y: ay}, scene.Organelle{X: bx, Y: by})
			Expect(l.OriginX).To(Equal(ax))
			Expect(l.OriginY).To(Equal(ay))
			Expect(l.Length).To(BeNumerically("~", length, 1e-9))
			Expect(l.AngleDegrees).To(BeNumerically("~", angle, 1e-9))
		},
		Entry("horizontal", 0.0, 0.0, 100.0, 0.0, 100.0, 0.0),
		Entry("vertical", 0.0, 0.0, 0.0, 100.0, 100.0, 90.0),
		Entry("leftward", 100.0, 0.0, 0.0, 0.0, 100.0, 180.0),
		Entry("upward", 0.0, 100.0, 0.0, 0.0, 100.0, -90.0),
		Entry("diagonal 3-4-5", 10.0, 10.0, 13.0, 14.0, 5.0, 53.13010235415598),
		Entry("coincident", 40.0, 40.0, 40.0, 40.0, 0.0, 0.0),
	)

	It("is symmetric in length", func() {
		orgs := organelles(7)
		for i := range orgs {
			for j := range orgs {
				ab := signal.Measure(orgs[i], orgs[j]).Length
				ba := signal.Measure(orgs[j], orgs[i]).Length
				Expect(ab).To(BeNumerically("~", ba, 1e-12))
			}
		}
	})
})

var _ = Describe("Marker.At", func() {
	m := signal.Marker{FromX: 0, FromY: 0, ToX: 100, ToY: 50, Cycle: 2 * time.Second, Delay: 500 * time.Millisecond}

	DescribeTable("position",
		func(elapsed time.Duration, x, y float64) {
			gx, gy := m.At(elapsed)
			Expect(gx).To(BeNumerically("~", x, 1e-9))
			Expect(gy).To(BeNumerically("~", y, 1e-9))
		},
		Entry("before delay", 100*time.Millisecond, 0.0, 0.0),
		Entry("at delay", 500*time.Millisecond, 0.0, 0.0),
		Entry("half way out", 1500*time.Millisecond, 50.0, 25.0),
		Entry("quarter way back", 3000*time.Millisecond, 75.0, 37.5),
		Entry("back at origin", 4500*time.Millisecond, 0.0, 0.0),
	)
})

var _ = Describe("Elements", func() {
	It("emits a line and a marker per link", func() {
		links := signal.Links(organelles(5), random.New(1))
		els := signal.Elements(links)
		Expect(els).To(HaveLen(20))

		for i, l := range links {
			line, marker := els[2*i], els[2*i+1]
			Expect(line.Kind).To(Equal(scene.KindLine))
			Expect(line.Width).To(Equal(l.Line.Length))
			Expect(line.Rotate).To(Equal(l.Line.AngleDegrees))
			Expect(line.Origin).To(Equal("left center"))
			Expect(line.Unit).To(Equal(scene.Percent))
			Expect(line.Height).To(Equal(1.0))
			Expect(line.HUnit()).To(Equal(scene.Pixels))

			Expect(marker.Kind).To(Equal(scene.KindMarker))
			Expect(marker.Anim).NotTo(BeNil())
			Expect(marker.Anim.Alternate).To(BeTrue())
			Expect(marker.Anim.Params).To(HaveKeyWithValue("to-x", l.Marker.ToX))
			Expect(timeline.Check(marker.Anim)).To(Succeed())
		}
	})

	It("shares one timeline across all markers", func() {
		s := scene.Scene{Elements: signal.Elements(signal.Links(organelles(5), random.New(1)))}
		Expect(s.Timelines()).To(Equal([]string{"signalPath"}))
	})
})
