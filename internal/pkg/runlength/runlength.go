// Package runlength collapses runs of adjacent equal values into
// (value, count) pairs.
//
// Only adjacent values are merged: [1, 1, 2, 1] yields three runs, not two.
// Callers that want per-value totals sort the input first.
package runlength

import "encoding/json"

// Run is one collapsed stretch of equal values.
type Run[T any] struct {
	Value T
	Count int
}

// MarshalJSON encodes a run as [value, count].
func (r Run[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{r.Value, r.Count})
}

// UniqCount returns one Run per stretch of adjacent equal items, in input
// order. Zero values (nil pointers, empty strings) form runs like any other
// value. The result is never nil.
func UniqCount[T comparable](items []T) []Run[T] {
	return UniqCountFunc(items, func(a, b T) bool { return a == b })
}

// UniqCountFunc is UniqCount with a caller-supplied equality.
func UniqCountFunc[T any](items []T, eq func(a, b T) bool) []Run[T] {
	runs := make([]Run[T], 0)
	for i, item := range items {
		if i > 0 && eq(items[i-1], item) {
			runs[len(runs)-1].Count++
			continue
		}
		runs = append(runs, Run[T]{Value: item, Count: 1})
	}
	return runs
}

// Total sums the counts of runs; for UniqCount output it equals the input length.
func Total[T any](runs []Run[T]) int {
	total := 0
	for _, r := range runs {
		total += r.Count
	}
	return total
}

// Values returns the value of each run, in order.
func Values[T any](runs []Run[T]) []T {
	values := make([]T, len(runs))
	for i, r := range runs {
		values[i] = r.Value
	}
	return values
}
