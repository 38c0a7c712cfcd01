package bracket

// MagicSeries returns the offsets that move a bottom bracket winner to its
// next match. Entry k belongs to the k-th bottom match counted from the
// start of the bottom segment.
//
// The series is built from ascending pairs (1,1), (2,2), ... and every time
// i is a power of two, i more copies of i follow the pair. It is cut to
// exactly until elements and then reversed.
func MagicSeries(until int) []int {
	if until <= 0 {
		return []int{}
	}

	series := make([]int, 0, until+until/2+1)
	for i := 1; 2*(i-1) < until; i++ {
		series = append(series, i, i)
		if i&(i-1) == 0 {
			for n := 0; n < i; n++ {
				series = append(series, i)
			}
		}
	}
	series = series[:until]

	for l, r := 0, len(series)-1; l < r; l, r = l+1, r-1 {
		series[l], series[r] = series[r], series[l]
	}
	return series
}
