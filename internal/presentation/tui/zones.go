package tui

import (
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/ports"
	zone "github.com/lrstanley/bubblezone"
)

// zoneRect reports the terminal cells bubblezone last recorded for a marked id.
type zoneRect struct {
	zones *zone.Manager
	id    string
}

var _ ports.RectProvider = zoneRect{}

func (z zoneRect) Rect() (domain.Rect, bool) {
	if z.zones == nil {
		return domain.Rect{}, false
	}
	info := z.zones.Get(z.id)
	if info == nil || info.IsZero() {
		return domain.Rect{}, false
	}
	return domain.Rect{
		X:      float64(info.StartX),
		Y:      float64(info.StartY),
		Width:  float64(info.EndX - info.StartX + 1),
		Height: float64(info.EndY - info.StartY + 1),
	}, true
}

// cellCenter maps a terminal cell to the point at its centre.
func cellCenter(x, y int) domain.Point {
	return domain.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
