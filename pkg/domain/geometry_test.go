package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Edges(t *testing.T) {
	r := domain.Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, domain.Point{X: 25, Y: 40}, r.Center())
	assert.True(t, r.Contains(domain.Point{X: 10, Y: 60}))
	assert.False(t, r.Contains(domain.Point{X: 9, Y: 30}))
}

func TestParse(t *testing.T) {
	o, err := domain.ParseOrientation("")
	require.NoError(t, err)
	assert.Equal(t, domain.Vertical, o)

	_, err = domain.ParseOrientation("diagonal")
	assert.Error(t, err)

	p, err := domain.ParsePosition("after")
	require.NoError(t, err)
	assert.Equal(t, domain.After, p)

	_, err = domain.ParseDirection("north")
	assert.Error(t, err)
}

func TestThresholds_Validate(t *testing.T) {
	assert.NoError(t, domain.DefaultThresholds.Validate())
	assert.NoError(t, domain.Thresholds{Before: 0.5, After: 0.5}.Validate())
	assert.Error(t, domain.Thresholds{Before: 0.8, After: 0.2}.Validate())
	assert.Error(t, domain.Thresholds{Before: -0.1, After: 0.5}.Validate())
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{OnDragStart: func(*domain.DragEvent) { calls = append(calls, "a") }}
	b := domain.LifecycleHooks{
		OnDragStart: func(*domain.DragEvent) { calls = append(calls, "b") },
		OnDragEnd:   func(*domain.DropEvent) { calls = append(calls, "end") },
	}

	merged := a.Merge(b)
	merged.OnDragStart(&domain.DragEvent{})
	merged.OnDragEnd(&domain.DropEvent{})

	assert.Equal(t, []string{"a", "b", "end"}, calls)
	assert.Nil(t, merged.OnZoneFocus)
}

func TestUsageError(t *testing.T) {
	err := &domain.UsageError{Op: "MoveFocus", Err: domain.ErrNoKeyboardSession}

	assert.True(t, errors.Is(err, domain.ErrNoKeyboardSession))
	assert.True(t, domain.IsUsageError(err))
	assert.False(t, domain.IsUsageError(domain.ErrCycle))
	assert.Equal(t, "MoveFocus: no active keyboard drag", err.Error())
}
