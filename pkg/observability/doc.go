/*
Package observability wires walker traversals into Prometheus.

Metrics holds the collectors; Hooks adapts a Metrics value to the
domain.TraversalHooks callbacks a walker accepts, so instrumenting a
traversal is one option at construction time:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	w := walker.New(roots, walker.WithHooks(observability.Hooks[Payload, string](metrics)))
*/
package observability
