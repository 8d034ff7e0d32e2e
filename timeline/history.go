// Package timeline provides a chronological series of observations keyed by
// an epoch-milliseconds timestamp. Timestamps are unique and the series is
// always kept sorted.
package timeline

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a
// specific instant. It ensures that instants are unique and the series is
// always sorted.
type History[T ~int | ~int32 | ~int64 | ~float64] struct {
	stamps []int64
	values []T
}

// Latest returns the most recent instant and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (stamp int64, value T) {
	last := len(h.stamps) - 1
	if last < 0 {
		return 0, *new(T)
	}
	return h.stamps[last], h.values[last]
}

// Clear removes all items from the history.
func (h *History[T]) Clear() {
	h.stamps = h.stamps[:0]
	h.values = h.values[:0]
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.stamps) }

// chronological is a private implementation to make this history chronologically sorted.
type chronological[T ~int | ~int32 | ~int64 | ~float64] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.stamps[i] < s.stamps[j] }

func (s chronological[T]) Swap(i, j int) {
	s.stamps[i], s.stamps[j] = s.stamps[j], s.stamps[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// sort sorts the history in chronological order.
func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history.
//
// An existing value at that exact instant is overwritten.
func (h *History[T]) Append(on int64, v T) *History[T] {
	if i := slices.Index(h.stamps, on); i >= 0 {
		// A point exists at that exact instant, the last data wins.
		h.values[i] = v
		return h
	}
	h.stamps, h.values = append(h.stamps, on), append(h.values, v)
	h.sort()
	return h
}

// Union merges all points of 'other' into the history.
//
// A point whose instant is already present is dropped: the receiver's value
// is kept, whatever the incoming value. It returns the number of points
// actually added.
func (h *History[T]) Union(other *History[T]) int {
	added := 0
	for on, v := range other.Values() {
		if slices.Contains(h.stamps, on) {
			continue
		}
		h.stamps, h.values = append(h.stamps, on), append(h.values, v)
		added++
	}
	if added > 0 {
		h.sort()
	}
	return added
}

// Values returns an iterator over all instant/value pairs in the history, in
// chronological order.
func (h *History[T]) Values() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		for i, on := range h.stamps {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'stamp' and true, or zero value and false.
func (h *History[T]) Get(stamp int64) (T, bool) {
	if i := slices.Index(h.stamps, stamp); i >= 0 {
		return h.values[i], true
	}
	var zero T
	return zero, false
}
