// Package list provides reorder helpers for flat sortable lists and grids.
// Every function returns a new slice and leaves its input untouched.
package list

import (
	"slices"

	"github.com/aretw0/dropzone/pkg/domain"
)

// IndexOf returns the index of the element whose id matches, or -1.
func IndexOf[T any](items []T, id func(T) string, want string) int {
	return slices.IndexFunc(items, func(it T) bool { return id(it) == want })
}

// Move returns a copy of items with the element at from relocated to index to.
// Out-of-range indices return an unchanged copy.
func Move[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) {
		return out
	}
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, moved)
}

// InsertAt returns a copy of items with item inserted at index (clamped to the bounds).
func InsertAt[T any](items []T, index int, item T) []T {
	index = max(0, min(index, len(items)))
	return slices.Insert(slices.Clone(items), index, item)
}

// RemoveByID returns a copy of items without the elements whose id matches.
func RemoveByID[T any](items []T, id func(T) string, want string) []T {
	return slices.DeleteFunc(slices.Clone(items), func(it T) bool { return id(it) == want })
}

// Apply reorders items according to a drop result. Before and after place the source next to
// the destination; inside takes the destination's slot. It reports false, with an unchanged
// copy, when the result is cancelled or either id is missing.
func Apply[T any](items []T, id func(T) string, r *domain.DropResult) ([]T, bool) {
	if r.Cancelled() {
		return slices.Clone(items), false
	}
	from := IndexOf(items, id, r.Source.ID)
	to := IndexOf(items, id, r.Destination.ID)
	if from < 0 || to < 0 {
		return slices.Clone(items), false
	}
	if from == to {
		return slices.Clone(items), true
	}

	switch r.Destination.Position {
	case domain.Inside:
		return Move(items, from, to), true
	case domain.Before:
		if from < to {
			to--
		}
	case domain.After:
		if from > to {
			to++
		}
	}
	return Move(items, from, to), true
}
