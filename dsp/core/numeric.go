package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// LinSpace returns num values evenly spaced over [start, stop], endpoints
// included. num <= 0 returns nil; num == 1 returns [start].
func LinSpace(start, stop float64, num int) []float64 {
	if num <= 0 {
		return nil
	}

	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	out[num-1] = stop

	return out
}
