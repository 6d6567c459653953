package bench

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimpleQuantile(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		q      float64
		want   float64
	}{
		{"empty", nil, 0.5, 0},
		{"single", []float64{7}, 0.5, 7},
		{"median odd", []float64{3, 1, 2}, 0.5, 2},
		{"median even interpolates", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"clamped low", []float64{5, 1, 9}, -0.1, 1},
		{"clamped high", []float64{5, 1, 9}, 1.5, 9},
		{"p95 interpolates", []float64{10, 20, 30, 40, 50}, 0.95, 48},
		{"unsorted input", []float64{50, 10, 40, 20, 30}, 0.25, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := simpleQuantile(tc.values, tc.q)
			if !almostEqual(got, tc.want) {
				t.Errorf("simpleQuantile(%v, %v) = %v, want %v", tc.values, tc.q, got, tc.want)
			}
		})
	}
}

func TestSimpleQuantile_DoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	simpleQuantile(values, 0.5)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input slice was mutated: %v", values)
	}
}

func TestMean(t *testing.T) {
	if got := mean(nil); got != 0 {
		t.Errorf("mean(nil) = %v, want 0", got)
	}
	if got := mean([]float64{2, 4, 6}); !almostEqual(got, 4) {
		t.Errorf("mean = %v, want 4", got)
	}
}

func TestMinMax(t *testing.T) {
	lo, hi := minMax([]float64{4, 1, 9, 3})
	if lo != 1 || hi != 9 {
		t.Errorf("minMax = (%v, %v), want (1, 9)", lo, hi)
	}
	lo, hi = minMax(nil)
	if lo != 0 || hi != 0 {
		t.Errorf("minMax(nil) = (%v, %v), want (0, 0)", lo, hi)
	}
}
