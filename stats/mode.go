package stats

import (
	"cmp"
	"slices"
)

// ValueCount is one entry of a frequency table.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

func tally[K comparable](counts map[K]int, k K) {
	counts[k]++
}

// mode returns the most frequent key, the lowest key on ties.
func mode[K cmp.Ordered](counts map[K]int) (K, int) {
	var best K
	n := 0
	for k, c := range counts {
		if c > n || (c == n && k < best) {
			best, n = k, c
		}
	}
	return best, n
}

// ranked orders counts by descending frequency, then ascending value.
func ranked(counts map[string]int) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	slices.SortFunc(out, func(a, b ValueCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}
