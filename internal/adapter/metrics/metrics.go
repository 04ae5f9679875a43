// Package metrics exposes catalog moderation activity to Prometheus.
// The Collector subscribes to the event bus and counts every committed
// domain event by type.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

const namespace = "cookbook_catalog"

// Collector holds the catalog event counters.
type Collector struct {
	events        *prometheus.CounterVec
	notifications prometheus.Counter
}

// NewCollector creates the counters and registers them with reg.
// It panics if they are already registered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Committed catalog domain events by type.",
		}, []string{"type"}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notified_users_total",
			Help:      "Users targeted by catalog domain events.",
		}),
	}
	reg.MustRegister(c.events, c.notifications)
	return c
}

// Handle is an eventbus handler.
func (c *Collector) Handle(_ context.Context, ev domain.DomainEvent) error {
	c.events.WithLabelValues(ev.Type.String()).Inc()
	c.notifications.Add(float64(len(ev.TargetUserIDs)))
	return nil
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
