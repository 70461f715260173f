package score

import "math"

// Round rounds x to the given number of decimals. Exact halves go to the
// even neighbour.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(x*p) / p
}

// TrendPersen is the change rate from old to new in percent. Unlike a
// plain change rate, it is 0 when there is nothing to compare with.
func TrendPersen(new, old int) float64 {
	if old == 0 {
		return 0
	}

	return Round(float64(new-old)/float64(old)*100, 1)
}
