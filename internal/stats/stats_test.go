package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"fares", []float64{10, 20, 30}, 20},
		{"negative", []float64{-2, 2}, 0},
	}
	for _, tt := range tests {
		if got := Mean(tt.values); got != tt.want {
			t.Errorf("%s: Mean(%v) = %v, want %v", tt.name, tt.values, got, tt.want)
		}
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]float64{12, 24, 36}); got != 72 {
		t.Errorf("Sum = %v, want 72", got)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0}, // 1.005 is stored just below 1.005
		{14.738, 14.74},
		{33.3333, 33.33},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"odd", []float64{3, 1, 2}, 2},
		{"even interpolates", []float64{1, 2, 3, 4}, 2.5},
		{"unsorted input", []float64{9.4, 0.5, 1.7, 2.2, 1.1}, 1.7},
	}
	for _, tt := range tests {
		if got := Median(tt.values); got != tt.want {
			t.Errorf("%s: Median(%v) = %v, want %v", tt.name, tt.values, got, tt.want)
		}
	}
}

func TestQuantileBounds(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	if got := Quantile(values, 0); got != 1 {
		t.Errorf("Quantile(.., 0) = %v, want 1", got)
	}
	if got := Quantile(values, 1); got != 5 {
		t.Errorf("Quantile(.., 1) = %v, want 5", got)
	}
	if got := Quantile(values, -0.5); got != 1 {
		t.Errorf("Quantile clamps below: got %v, want 1", got)
	}
	if got := Quantile(values, 1.5); got != 5 {
		t.Errorf("Quantile clamps above: got %v, want 5", got)
	}
}

func TestFixedWidthBins(t *testing.T) {
	values := []float64{0.5, 1.5, 1.6, 9.9, 10}
	bins := FixedWidthBins(values, 10, 0, 10)

	if len(bins) != 10 {
		t.Fatalf("len(bins) = %d, want 10", len(bins))
	}
	if bins[0].Count != 1 {
		t.Errorf("bins[0].Count = %d, want 1", bins[0].Count)
	}
	if bins[1].Count != 2 {
		t.Errorf("bins[1].Count = %d, want 2", bins[1].Count)
	}
	// The max value lands in the final bin, not past it.
	if bins[9].Count != 2 {
		t.Errorf("bins[9].Count = %d, want 2", bins[9].Count)
	}

	var total int
	for _, b := range bins {
		total += b.Count
	}
	if total != len(values) {
		t.Errorf("binned %d values, want %d", total, len(values))
	}

	if bins[0].Start != 0 || bins[9].End != 10 {
		t.Errorf("bin span = [%v, %v], want [0, 10]", bins[0].Start, bins[9].End)
	}
}

func TestFixedWidthBinsEmitsZeroCounts(t *testing.T) {
	bins := FixedWidthBins([]float64{0.1}, 4, 0, 8)
	if len(bins) != 4 {
		t.Fatalf("len(bins) = %d, want 4", len(bins))
	}
	for i := 1; i < 4; i++ {
		if bins[i].Count != 0 {
			t.Errorf("bins[%d].Count = %d, want 0", i, bins[i].Count)
		}
	}
}

func TestFixedWidthBinsDegenerate(t *testing.T) {
	if got := FixedWidthBins([]float64{1, 2}, 0, 0, 10); got != nil {
		t.Errorf("zero bins: got %v, want nil", got)
	}
	if got := FixedWidthBins([]float64{1, 2}, 10, 5, 5); got != nil {
		t.Errorf("empty span: got %v, want nil", got)
	}
}
