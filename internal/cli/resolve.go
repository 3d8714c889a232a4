package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/dropzone"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/geometry"
	"github.com/aretw0/dropzone/pkg/ports"
)

// ResolveOptions configures a one-off position resolution.
type ResolveOptions struct {
	Rect        string // "x,y,width,height"
	Point       string // "x,y"
	Orientation string
	Binary      bool
	Before      float64
	After       float64
}

// Resolve reports where a pointer lands relative to a rectangle.
func Resolve(opts ResolveOptions) (domain.Position, error) {
	rv, err := parseFloats(opts.Rect, 4)
	if err != nil {
		return "", fmt.Errorf("rect: %w", err)
	}
	pv, err := parseFloats(opts.Point, 2)
	if err != nil {
		return "", fmt.Errorf("point: %w", err)
	}
	orientation, err := domain.ParseOrientation(opts.Orientation)
	if err != nil {
		return "", err
	}
	th := domain.Thresholds{Before: opts.Before, After: opts.After}
	if opts.Binary {
		th = geometry.Binary
	}

	eng, err := dropzone.New(dropzone.WithThresholds(th), dropzone.WithAnnouncements(false))
	if err != nil {
		return "", err
	}
	defer eng.Close()

	rect := domain.Rect{X: rv[0], Y: rv[1], Width: rv[2], Height: rv[3]}
	eng.RegisterDroppable("target", ports.StaticRect(rect), domain.DroppableConfig{Orientation: orientation})
	return eng.ResolvePosition("target", domain.Point{X: pv[0], Y: pv[1]})
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
