package random

import (
	"math/rand"
	"time"
)

// Source is the randomness every generator draws from.
type Source interface {
	Float64() float64
}

// Rand is a seeded Source with range helpers.
type Rand struct {
	rng *rand.Rand
}

// New returns a Rand seeded with seed. A zero seed draws from the clock.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Uniform returns a value in [min, max) from src.
func Uniform(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// Intn returns an int in [0, n) from src.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Pick returns a random element of items, or the zero value when empty.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[Intn(src, len(items))]
}

// Fixed replays a fixed sequence of values, cycling when exhausted.
type Fixed struct {
	Values []float64
	next   int
}

func (f *Fixed) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}
