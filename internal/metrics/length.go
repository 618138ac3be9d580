package metrics

import "github.com/san-kum/labfx/internal/signal"

type MeanLength struct {
	name    string
	sum     float64
	samples int
}

func NewMeanLength() *MeanLength {
	return &MeanLength{
		name: "mean_length",
	}
}

func (m *MeanLength) Name() string {
	return m.name
}

func (m *MeanLength) Observe(l signal.Link) {
	m.sum += l.Line.Length
	m.samples++
}

func (m *MeanLength) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanLength) Reset() {
	m.sum = 0
	m.samples = 0
}

type MaxLength struct {
	name string
	max  float64
}

func NewMaxLength() *MaxLength {
	return &MaxLength{name: "max_length"}
}

func (m *MaxLength) Name() string { return m.name }

func (m *MaxLength) Observe(l signal.Link) {
	if l.Line.Length > m.max {
		m.max = l.Line.Length
	}
}

func (m *MaxLength) Value() float64 { return m.max }

func (m *MaxLength) Reset() { m.max = 0 }
