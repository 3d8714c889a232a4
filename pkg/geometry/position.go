package geometry

import "github.com/aretw0/dropzone/pkg/domain"

// Binary thresholds collapse the inside band, producing only before or after.
var Binary = domain.Thresholds{Before: 0.5, After: 0.5}

// Resolve maps a pointer to a position within target.
//
// The pointer is projected onto the axis of orientation (y for vertical, x for horizontal)
// and expressed relative to the target's extent. Values below th.Before resolve to before,
// values above th.After to after, everything else (boundaries included) to inside.
// Pointers outside the target are valid input. A zero extent yields ±Inf or NaN, which the
// same comparisons resolve deterministically (NaN lands inside).
func Resolve(p domain.Point, target domain.Rect, orientation domain.Orientation, th domain.Thresholds) domain.Position {
	relative := Relative(p, target, orientation)
	switch {
	case relative < th.Before:
		return domain.Before
	case relative > th.After:
		return domain.After
	default:
		return domain.Inside
	}
}

// Relative returns the pointer's offset along the orientation axis as a fraction of the extent.
func Relative(p domain.Point, target domain.Rect, orientation domain.Orientation) float64 {
	if orientation == domain.Horizontal {
		return (p.X - target.X) / target.Width
	}
	return (p.Y - target.Y) / target.Height
}
