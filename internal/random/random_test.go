package random

import "testing"

func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}

func TestUniformRange(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(r, 10, 30)
		if v < 10 || v >= 30 {
			t.Fatalf("value %f outside [10, 30)", v)
		}
	}
}

func TestIntn(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		n    int
		want int
	}{
		{"low", 0.0, 4, 0},
		{"mid", 0.5, 4, 2},
		{"high", 0.999, 4, 3},
		{"empty", 0.5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &Fixed{Values: []float64{tt.draw}}
			if got := Intn(src, tt.n); got != tt.want {
				t.Errorf("Intn() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPick(t *testing.T) {
	src := &Fixed{Values: []float64{0.75}}
	if got := Pick(src, []string{"a", "b", "c", "d"}); got != "d" {
		t.Errorf("expected d, got %s", got)
	}
	if got := Pick[string](src, nil); got != "" {
		t.Errorf("expected zero value, got %q", got)
	}
}

func TestFixedCycles(t *testing.T) {
	f := &Fixed{Values: []float64{0.1, 0.2}}
	got := []float64{f.Float64(), f.Float64(), f.Float64()}
	if got[0] != 0.1 || got[1] != 0.2 || got[2] != 0.1 {
		t.Errorf("unexpected sequence %v", got)
	}
}
