// Descriptive statistics over sample windows
package calc

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Computes every statistic of the report. ok is false for an empty window.
func Summarize(values []int32) (summary Summary, ok bool) {
	if len(values) == 0 {
		return
	}

	summary.Count = len(values)
	summary.Mean, summary.StdDev = stat.PopMeanStdDev(toFloat64(values), nil)
	summary.Mode = Mode(values)
	summary.Median = Median(values)
	ok = true
	return
}

// Arithmetic mean
func Mean(values []int32) (mean float64) {
	if len(values) == 0 {
		return
	}
	mean = stat.Mean(toFloat64(values), nil)
	return
}

// Population standard deviation: sqrt of the mean squared deviation
func PopStdDev(values []int32) (stdDev float64) {
	if len(values) == 0 {
		return
	}
	_, stdDev = stat.PopMeanStdDev(toFloat64(values), nil)
	return
}

// Most frequent value.
// Values are grouped in first-encounter order and the groups stable-sorted by
// descending count, so on a tie the value that appeared earliest wins.
func Mode(values []int32) (mode int32) {
	if len(values) == 0 {
		return
	}

	type group struct {
		value int32
		count int
	}

	index := make(map[int32]int, len(values))
	groups := make([]group, 0, len(values))
	for _, v := range values {
		i, seen := index[v]
		if !seen {
			i = len(groups)
			index[v] = i
			groups = append(groups, group{value: v})
		}
		groups[i].count++
	}

	slices.SortStableFunc(groups, func(a, b group) int {
		return b.count - a.count
	})

	mode = groups[0].value
	return
}

// Middle value of a sorted copy; even counts average the two central values
func Median(values []int32) (median float64) {
	n := len(values)
	if n == 0 {
		return
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	if n%2 == 0 {
		// float addition avoids int32 overflow near the limits
		median = (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2.0
		return
	}
	median = float64(sorted[n/2])
	return
}

func toFloat64(values []int32) (out []float64) {
	out = make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return
}
