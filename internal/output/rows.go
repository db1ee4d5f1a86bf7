// internal/output/rows.go
package output

import (
	"sort"
	"strconv"

	"bikecalc-core/calc"
)

// SortedPairs returns the key set of a per-pair result map ordered by
// front then rear tooth count, the deterministic display order.
func SortedPairs[V any](m map[calc.Pair]V) []calc.Pair {
	pairs := make([]calc.Pair, 0, len(m))
	for p := range m {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Front != pairs[j].Front {
			return pairs[i].Front < pairs[j].Front
		}
		return pairs[i].Rear < pairs[j].Rear
	})
	return pairs
}

// fmtFloat renders a float without trailing zero noise.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
