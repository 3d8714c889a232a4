package ports

import "github.com/aretw0/dropzone/pkg/domain"

// RectProvider supplies the current bounding rectangle of a registered element.
// It returns false when the element is not laid out (detached, hidden, not yet rendered).
type RectProvider interface {
	Rect() (domain.Rect, bool)
}

// RectFunc adapts a function to RectProvider.
type RectFunc func() (domain.Rect, bool)

func (f RectFunc) Rect() (domain.Rect, bool) {
	return f()
}

// StaticRect is a RectProvider with fixed bounds.
type StaticRect domain.Rect

func (r StaticRect) Rect() (domain.Rect, bool) {
	return domain.Rect(r), true
}
