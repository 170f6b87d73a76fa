// Package weighted provides the one weighted-random selection primitive the
// engine uses everywhere a candidate must be chosen by skill or opportunity.
// Position and rating weights are data fed into Pick, never separate
// sampling implementations.
package weighted

import "github.com/gridironsim/playsim/internal/sim/rng"

// Item pairs a candidate with its selection weight. Weights at or below
// zero are treated as zero.
type Item[T any] struct {
	Value  T
	Weight float64
}

// Pick draws one item by cumulative weight. When every weight is zero the
// draw degrades to uniform choice over the whole set, so a valid candidate
// list never fails to select. Returns false only for an empty list.
func Pick[T any](src rng.Source, items []Item[T]) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}

	total := 0.0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return items[src.IntN(len(items))].Value, true
	}

	target := src.Float64() * total
	acc := 0.0
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		acc += it.Weight
		if target < acc {
			return it.Value, true
		}
	}
	// Floating point can leave target a hair past the last bucket.
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Weight > 0 {
			return items[i].Value, true
		}
	}
	return items[len(items)-1].Value, true
}

// PickN draws up to n distinct items without replacement, re-weighting
// after each draw.
func PickN[T any](src rng.Source, items []Item[T], n int) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}

	pool := make([]Item[T], len(items))
	copy(pool, items)

	out := make([]T, 0, n)
	for len(out) < n && len(pool) > 0 {
		idx := pickIndex(src, pool)
		out = append(out, pool[idx].Value)
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}

func pickIndex[T any](src rng.Source, items []Item[T]) int {
	total := 0.0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return src.IntN(len(items))
	}

	target := src.Float64() * total
	acc := 0.0
	for i, it := range items {
		if it.Weight <= 0 {
			continue
		}
		acc += it.Weight
		if target < acc {
			return i
		}
	}
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Weight > 0 {
			return i
		}
	}
	return len(items) - 1
}
