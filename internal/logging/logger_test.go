package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/dropzone/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo)

	logger.Debug("hidden", "zone_id", "a")
	logger.Info("drag started", "item_id", "card-1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "drag started")
	assert.Contains(t, out, "card-1")
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.NewNop().Error("ignored")
	})
}
