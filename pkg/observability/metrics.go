package observability

import (
	"errors"
	"sync"
	"time"

	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of the drags_ended_total counter.
const (
	OutcomeDropped   = "dropped"
	OutcomeCancelled = "cancelled"
)

// Metrics holds the collectors updated by the engine lifecycle hooks.
type Metrics struct {
	Started   *prometheus.CounterVec
	Ended     *prometheus.CounterVec
	Rejected  *prometheus.CounterVec
	Focus     prometheus.Counter
	ZoneEnter prometheus.Counter
	Duration  *prometheus.HistogramVec

	mu      sync.Mutex
	started time.Time
}

// NewMetrics creates the collectors under namespace (default "dropzone").
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "dropzone"
	}
	return &Metrics{
		Started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drags_started_total",
			Help:      "Total number of drag sessions started",
		}, []string{"mode"}),
		Ended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drags_ended_total",
			Help:      "Total number of drag sessions ended, by outcome",
		}, []string{"mode", "outcome"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_rejected_total",
			Help:      "Total number of drops refused, by reason",
		}, []string{"reason"}),
		Focus: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "zone_focus_total",
			Help:      "Total number of keyboard focus moves between drop zones",
		}),
		ZoneEnter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "zone_enter_total",
			Help:      "Total number of times a pointer drag entered a drop zone",
		}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "drag_duration_seconds",
			Help:      "Duration of drag sessions",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"mode"}),
	}
}

// Register registers every collector with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Started, m.Ended, m.Rejected, m.Focus, m.ZoneEnter, m.Duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDragStart: func(e *domain.DragEvent) {
			m.Started.WithLabelValues(string(e.Mode)).Inc()
			m.mu.Lock()
			m.started = e.Timestamp
			m.mu.Unlock()
		},
		OnDragEnd: func(e *domain.DropEvent) {
			outcome := OutcomeDropped
			if e.Result.Cancelled() {
				outcome = OutcomeCancelled
			}
			m.Ended.WithLabelValues(string(e.Mode), outcome).Inc()

			m.mu.Lock()
			started := m.started
			m.started = time.Time{}
			m.mu.Unlock()
			if !started.IsZero() && !e.Timestamp.Before(started) {
				m.Duration.WithLabelValues(string(e.Mode)).Observe(e.Timestamp.Sub(started).Seconds())
			}
		},
		OnMoveRejected: func(e *domain.RejectEvent) {
			m.Rejected.WithLabelValues(Reason(e.Reason)).Inc()
		},
		OnZoneFocus: func(*domain.ZoneEvent) {
			m.Focus.Inc()
		},
		OnZoneEnter: func(*domain.ZoneEvent) {
			m.ZoneEnter.Inc()
		},
	}
}

// Reason maps a rejection error to a low-cardinality label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCycle):
		return "cycle"
	case errors.Is(err, domain.ErrSelfDrop):
		return "self"
	case errors.Is(err, domain.ErrTypeMismatch):
		return "type"
	case errors.Is(err, domain.ErrZoneDisabled):
		return "disabled"
	}
	return "other"
}
