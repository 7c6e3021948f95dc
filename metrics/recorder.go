package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridroute/astar"
)

// Result label values of gridroute_searches_total.
const (
	ResultFound       = "found"
	ResultUnreachable = "unreachable"
	ResultLimit       = "limit"
	ResultInvalid     = "invalid"
	ResultCancelled   = "cancelled"
)

// ErrNilRegisterer is returned by NewRecorder for a nil registerer.
var ErrNilRegisterer = errors.New("metrics: registerer is nil")

// Recorder counts search outcomes. It is safe for concurrent use.
type Recorder struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	cost     prometheus.Histogram
}

var _ astar.Observer = (*Recorder)(nil)

// NewRecorder registers the gridroute collectors on reg.
// Registering twice on the same registry fails with the registry's
// AlreadyRegisteredError, returned unchanged. On any registration error
// nothing stays registered.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	rec := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridroute_searches_total",
			Help: "Total route searches by result",
		}, []string{"result"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridroute_expanded_nodes",
			Help:    "Nodes expanded per route search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridroute_path_cost",
			Help:    "Accumulated cost of found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	collectors := []prometheus.Collector{rec.searches, rec.expanded, rec.cost}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return nil, err
		}
	}
	for _, r := range []string{ResultFound, ResultUnreachable, ResultLimit, ResultInvalid, ResultCancelled} {
		rec.searches.WithLabelValues(r)
	}

	return rec, nil
}

// ObserveSearch implements astar.Observer.
func (r *Recorder) ObserveSearch(res astar.Result, err error) {
	label := Classify(err)
	r.searches.WithLabelValues(label).Inc()
	if label == ResultInvalid || label == ResultCancelled {
		return
	}
	r.expanded.Observe(float64(res.Stats.Expanded))
	if res.Found {
		r.cost.Observe(res.Cost)
	}
}

// Classify maps a FindPath error onto a result label. Errors that are
// neither unreachability nor cancellation count as invalid.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultFound
	case errors.Is(err, astar.ErrExpansionLimit):
		return ResultLimit
	case errors.Is(err, astar.ErrUnreachable):
		return ResultUnreachable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCancelled
	default:
		return ResultInvalid
	}
}
