package geometry

import (
	"math"

	"github.com/aretw0/dropzone/pkg/domain"
)

// Candidate is a zone considered during navigation or closest-zone search.
type Candidate struct {
	ID   string
	Rect domain.Rect
}

// Next returns the candidate nearest to current in direction dir.
//
// Only candidates lying strictly in the half-plane beyond current's edge qualify (for Down,
// the candidate's top must be below current's bottom). The winner minimises the edge-to-edge
// distance along the movement axis; ties go to the earliest candidate in the slice.
func Next(current domain.Rect, dir domain.Direction, candidates []Candidate) (Candidate, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range candidates {
		dist, ok := edgeDistance(current, c.Rect, dir)
		if !ok {
			continue
		}
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return Candidate{}, false
	}
	return candidates[best], true
}

func edgeDistance(cur, cand domain.Rect, dir domain.Direction) (float64, bool) {
	switch dir {
	case domain.Down:
		return cand.Top() - cur.Bottom(), cand.Top() > cur.Bottom()
	case domain.Up:
		return cur.Top() - cand.Bottom(), cand.Bottom() < cur.Top()
	case domain.Right:
		return cand.Left() - cur.Right(), cand.Left() > cur.Right()
	case domain.Left:
		return cur.Left() - cand.Right(), cand.Right() < cur.Left()
	}
	return 0, false
}

// Closest returns the candidate whose centre, top-centre or bottom-centre is nearest to p,
// with the position implied by the nearest anchor (top → before, bottom → after,
// centre → inside). Ties keep the earliest candidate.
func Closest(p domain.Point, candidates []Candidate) (Candidate, domain.Position, bool) {
	best := -1
	bestDist := math.Inf(1)
	bestPos := domain.Inside
	for i, c := range candidates {
		center := c.Rect.Center()
		toCenter := math.Hypot(p.X-center.X, p.Y-center.Y)
		toTop := math.Hypot(p.X-center.X, p.Y-c.Rect.Top())
		toBottom := math.Hypot(p.X-center.X, p.Y-c.Rect.Bottom())

		dist := math.Min(toCenter, math.Min(toTop, toBottom))
		if dist >= bestDist {
			continue
		}
		best, bestDist = i, dist
		switch dist {
		case toTop:
			bestPos = domain.Before
		case toBottom:
			bestPos = domain.After
		default:
			bestPos = domain.Inside
		}
	}
	if best < 0 {
		return Candidate{}, "", false
	}
	return candidates[best], bestPos, true
}
