package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// Metrics holds the traversal collectors. One Metrics value may back any
// number of walkers; the counters aggregate across them.
type Metrics struct {
	nodesYielded      prometheus.Counter
	subtreesAbandoned prometheus.Counter
	resolveFailures   prometheus.Counter
	resolveDuration   prometheus.Histogram
}

// NewMetrics creates and registers the traversal collectors. Pass
// prometheus.DefaultRegisterer for the default registry. Registration
// panics on duplicate collectors, matching prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		nodesYielded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tree_walker_nodes_yielded_total",
			Help: "Total number of nodes yielded by walkers",
		}),
		subtreesAbandoned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tree_walker_subtrees_abandoned_total",
			Help: "Total number of subtrees abandoned mid-traversal",
		}),
		resolveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tree_walker_resolve_failures_total",
			Help: "Total number of failed children resolutions",
		}),
		resolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tree_walker_resolve_duration_seconds",
			Help:    "Duration of children resolutions",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.nodesYielded, m.subtreesAbandoned, m.resolveFailures, m.resolveDuration)
	return m
}

// Hooks adapts the metrics to the hook callbacks a walker accepts. It is a
// package function rather than a method because hooks carry the walker's
// type parameters.
func Hooks[T, I any](m *Metrics) domain.TraversalHooks[T, I] {
	return domain.TraversalHooks[T, I]{
		OnNodeYield: func(context.Context, *domain.Node[T, I]) {
			m.nodesYielded.Inc()
		},
		OnSubtreeAbandon: func() {
			m.subtreesAbandoned.Inc()
		},
		OnResolve: func(_ context.Context, _ *domain.Node[T, I], elapsed time.Duration, err error) {
			m.resolveDuration.Observe(elapsed.Seconds())
			if err != nil {
				m.resolveFailures.Inc()
			}
		},
	}
}
