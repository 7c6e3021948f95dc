// Package metrics exports route-search outcomes to Prometheus.
//
// A Recorder implements astar.Observer. Pass it with astar.WithObserver and
// every search contributes to three series:
//
//	gridroute_searches_total{result}  counter, result ∈ found|unreachable|limit|invalid|cancelled
//	gridroute_expanded_nodes          histogram of expanded nodes per search
//	gridroute_path_cost               histogram of the cost of found paths
//
// Metrics are registered on the caller's prometheus.Registerer; nothing is
// put on the global default registry.
package metrics
