package stats

// HistogramBin is one equal-width bucket of a histogram.
type HistogramBin struct {
	Start float64
	End   float64
	Count int
}

// FixedWidthBins buckets values into n equal-width bins spanning
// [min, max]. Values equal to max fall into the last bin. Values
// outside the span are ignored. Bins with no values are still emitted
// with a zero count so the x axis stays continuous.
func FixedWidthBins(values []float64, n int, min, max float64) []HistogramBin {
	if n <= 0 || max <= min {
		return nil
	}

	width := (max - min) / float64(n)
	bins := make([]HistogramBin, n)
	for i := range bins {
		bins[i].Start = min + float64(i)*width
		bins[i].End = min + float64(i+1)*width
	}
	bins[n-1].End = max

	for _, v := range values {
		if v < min || v > max {
			continue
		}
		idx := int((v - min) / width)
		if idx >= n {
			idx = n - 1
		}
		bins[idx].Count++
	}
	return bins
}
