package ranking

import "math"

// Pareto cutoff parameters.
const (
	TargetPercent = 80.0
	BandLow       = 78.0
	BandHigh      = 90.0
)

// SelectCutoff returns the index whose cumulative percentage is nearest to
// TargetPercent, preferring indexes inside the closed band
// [BandLow, BandHigh]. Without any index in the band the globally nearest
// index is used. Ties go to the lowest index. It returns -1 for an empty
// slice.
func SelectCutoff(cumulative []float64) int {
	if len(cumulative) == 0 {
		return -1
	}

	best := -1
	for i, c := range cumulative {
		if c < BandLow || c > BandHigh {
			continue
		}
		if best < 0 || distance(c) < distance(cumulative[best]) {
			best = i
		}
	}
	if best >= 0 {
		return best
	}

	best = 0
	for i, c := range cumulative {
		if distance(c) < distance(cumulative[best]) {
			best = i
		}
	}
	return best
}

func distance(c float64) float64 {
	return math.Abs(c - TargetPercent)
}
