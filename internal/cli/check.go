package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/dropzone"
	"github.com/aretw0/dropzone/internal/presentation/tui"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/ports"
	"github.com/aretw0/dropzone/pkg/tree"
)

// rowHeight is the height of each node in the virtual layout used to check moves.
const rowHeight = 20

// CheckOptions configures a tree file check.
type CheckOptions struct {
	Path     string
	Source   string
	Target   string
	Position domain.Position
	Debug    bool
	Log      io.Writer
}

// CheckMove loads the tree at opts.Path and, when a move is requested, runs it through the
// engine as a pointer drag over a virtual one-row-per-node layout. A rejected move is reported
// in Report.Err; the returned error is for unreadable files and unknown ids.
func CheckMove(opts CheckOptions) (tui.Report, error) {
	forest, err := tree.Load(opts.Path)
	if err != nil {
		return tui.Report{}, err
	}
	report := tui.Report{Source: opts.Path, Before: forest, After: forest}
	if opts.Source == "" {
		return report, nil
	}

	logger := createLogger(opts.Debug, opts.Log)
	eng, err := dropzone.New(
		dropzone.WithLogger(logger),
		dropzone.WithAnnouncements(false),
		dropzone.WithLifecycleHooks(createDebugHooks(logger)),
	)
	if err != nil {
		return report, err
	}
	defer eng.Close()

	rows := make(map[string]domain.Rect)
	for i, fl := range tree.Flatten(forest) {
		rect := domain.Rect{X: float64(fl.Level * rowHeight), Y: float64(i * rowHeight), Width: 200, Height: rowHeight}
		rows[fl.Node.ID] = rect
		eng.RegisterDraggable(fl.Node.ID, ports.StaticRect(rect), domain.DraggableConfig{
			Type:     fl.Node.Type,
			ParentID: fl.ParentID,
			Index:    domain.IndexOf(fl.Index),
			Label:    fl.Node.Label,
		})
		eng.RegisterDroppable(fl.Node.ID, ports.StaticRect(rect), domain.DroppableConfig{
			Type:      fl.Node.Type,
			ParentID:  fl.ParentID,
			Container: fl.Node.IsContainer(),
			Label:     fl.Node.Label,
		})
	}

	src := forest.Find(opts.Source)
	if src == nil {
		return report, fmt.Errorf("source %q: %w", opts.Source, domain.ErrNotFound)
	}
	target, ok := rows[opts.Target]
	if !ok {
		return report, fmt.Errorf("target %q: %w", opts.Target, domain.ErrNotFound)
	}

	eng.OnMoveRejected(func(e *domain.RejectEvent) {
		report.Err = e.Reason
	})

	entry, _ := eng.Registry().Draggable(opts.Source)
	if err := eng.StartDrag(entry.Config.Item(opts.Source)); err != nil {
		return report, err
	}
	result, err := eng.Drop(opts.Target, pointFor(target, opts.Position), forest)
	if err != nil {
		return report, err
	}
	report.Result = result
	if report.Err != nil {
		return report, nil
	}

	after, err := tree.Apply(forest, result)
	if err != nil {
		report.Err = err
		return report, nil
	}
	report.After = after
	return report, nil
}

// pointFor picks a point inside rect that the default thresholds resolve to pos.
func pointFor(rect domain.Rect, pos domain.Position) domain.Point {
	c := rect.Center()
	switch pos {
	case domain.Before:
		c.Y = rect.Top() + rect.Height*0.1
	case domain.After:
		c.Y = rect.Top() + rect.Height*0.9
	}
	return c
}
