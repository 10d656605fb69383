package core

import "math"

// ExpSpace returns num integer values spread exponentially between start and
// stop (both inclusive), i.e. evenly spaced on a natural-log axis and rounded
// to the nearest integer. Both bounds must be positive.
//
//	ExpSpace(1, 100, 3) -> [1, 10, 100]
func ExpSpace(start, stop float64, num int) []int {
	return expSpace(start, stop, num, math.Log, math.Exp)
}

// ExpSpace2 is like [ExpSpace] but spaces the values evenly on a base-2
// logarithmic axis.
func ExpSpace2(start, stop float64, num int) []int {
	return expSpace(start, stop, num, math.Log2, math.Exp2)
}

func expSpace(start, stop float64, num int, log, exp func(float64) float64) []int {
	if num <= 0 || start <= 0 || stop <= 0 {
		return nil
	}

	steps := LinSpace(log(start), log(stop), num)

	out := make([]int, num)
	for i, v := range steps {
		out[i] = int(math.Round(exp(v)))
	}

	return out
}
