package alert

import "math"

const (
	// MinBarHeight keeps a zero sample visible as a bar.
	MinBarHeight = 2.0
	DefaultTrack = 100.0
)

func SparklineHeights(samples []float64) []float64 {
	return ScaledSparklineHeights(samples, DefaultTrack)
}

// ScaledSparklineHeights scales each sample against the largest one.
// A non-positive maximum would divide by zero (or invert the bars), so
// every bar falls back to MinBarHeight.
func ScaledSparklineHeights(samples []float64, track float64) []float64 {
	if track <= 0 {
		track = DefaultTrack
	}
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}
	peak := samples[0]
	for _, v := range samples[1:] {
		peak = math.Max(peak, v)
	}
	for i, v := range samples {
		if peak <= 0 {
			out[i] = MinBarHeight
			continue
		}
		out[i] = math.Max(MinBarHeight, v/peak*track)
	}
	return out
}
