// Package metrics summarizes generated signal links.
package metrics

import "github.com/san-kum/labfx/internal/signal"

// Metric accumulates a single statistic over observed links.
type Metric interface {
	Name() string
	Observe(l signal.Link)
	Value() float64
	Reset()
}

// Default returns the summary set printed by the links command.
func Default() []Metric {
	return []Metric{NewMeanLength(), NewMaxLength(), NewDelaySpread()}
}

// Collect feeds every link to every metric and returns name/value pairs in
// metric order.
func Collect(links []signal.Link, ms ...Metric) []Result {
	results := make([]Result, 0, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, l := range links {
			m.Observe(l)
		}
		results = append(results, Result{Name: m.Name(), Value: m.Value()})
	}
	return results
}

type Result struct {
	Name  string
	Value float64
}
