package domain

import "fmt"

// Point is a screen-space coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a screen-space bounding rectangle with its origin at the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies within the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// Orientation selects the axis a zone is laid out along.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// ParseOrientation accepts "vertical" and "horizontal"; empty defaults to vertical.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case "", Vertical:
		return Vertical, nil
	case Horizontal:
		return Horizontal, nil
	}
	return "", fmt.Errorf("invalid orientation %q (expected vertical or horizontal)", s)
}

// Position is where a dragged item lands relative to a zone.
type Position string

const (
	Before Position = "before"
	After  Position = "after"
	Inside Position = "inside"
)

// ParsePosition validates a textual position.
func ParsePosition(s string) (Position, error) {
	switch Position(s) {
	case Before, After, Inside:
		return Position(s), nil
	}
	return "", fmt.Errorf("invalid position %q (expected before, after or inside)", s)
}

// Direction is a keyboard navigation direction.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection validates a textual direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down, Left, Right:
		return Direction(s), nil
	}
	return "", fmt.Errorf("invalid direction %q", s)
}

// Thresholds split a zone into before/inside/after bands, as fractions of its extent.
type Thresholds struct {
	Before float64 `json:"before" yaml:"before"`
	After  float64 `json:"after" yaml:"after"`
}

// DefaultThresholds partitions a zone into three bands: 25% before, 50% inside, 25% after.
var DefaultThresholds = Thresholds{Before: 0.25, After: 0.75}

// Validate checks that both thresholds are within [0,1] and ordered.
func (t Thresholds) Validate() error {
	if t.Before < 0 || t.After > 1 || t.Before > t.After {
		return fmt.Errorf("invalid thresholds before=%g after=%g", t.Before, t.After)
	}
	return nil
}
