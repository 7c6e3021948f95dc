package metrics_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/lattice"
	"github.com/katalvlaran/gridroute/metrics"
)

func at(x, y float64) lattice.Coordinate { return lattice.Coordinate{X: x, Y: y} }

func TestNewRecorder_Registration(t *testing.T) {
	_, err := metrics.NewRecorder(nil)
	require.ErrorIs(t, err, metrics.ErrNilRegisterer)

	reg := prometheus.NewRegistry()
	_, err = metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	var already prometheus.AlreadyRegisteredError
	require.ErrorAs(t, err, &already)
}

func TestNewRecorder_ConflictReturnsError(t *testing.T) {
	reg := prometheus.NewRegistry()
	clash := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gridroute_path_cost",
		Help: "Something else entirely",
	})
	require.NoError(t, reg.Register(clash))

	var err error
	require.NotPanics(t, func() { _, err = metrics.NewRecorder(reg) })
	require.Error(t, err)

	// the collectors registered before the clash were rolled back
	require.True(t, reg.Unregister(clash))
	_, err = metrics.NewRecorder(reg)
	require.NoError(t, err)
}

func TestRecorder_ObservesSearches(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	ticks := []float64{0, 1, 2, 3}
	g, err := lattice.NewGeometry(ticks, ticks, 1, lattice.WithExcluded(
		at(3, 3), at(3, 4), at(4, 3), // seals the corner (4, 4)
	))
	require.NoError(t, err)

	obs := astar.WithObserver(rec)
	_, err = astar.FindPath(g, at(0, 0), at(2, 2), obs)
	require.NoError(t, err)
	_, err = astar.FindPath(g, at(1, 1), at(3, 0), obs)
	require.NoError(t, err)
	_, err = astar.FindPath(g, at(0, 0), at(4, 4), obs)
	require.ErrorIs(t, err, astar.ErrUnreachable)
	_, err = astar.FindPath(g, at(0, 0), at(4, 0), obs, astar.WithMaxExpansions(1))
	require.ErrorIs(t, err, astar.ErrExpansionLimit)
	_, err = astar.FindPath(g, at(0, 0), at(9, 9), obs)
	require.ErrorIs(t, err, lattice.ErrInvalidGeometry)

	want := `
# HELP gridroute_searches_total Total route searches by result
# TYPE gridroute_searches_total counter
gridroute_searches_total{result="cancelled"} 0
gridroute_searches_total{result="found"} 2
gridroute_searches_total{result="invalid"} 1
gridroute_searches_total{result="limit"} 1
gridroute_searches_total{result="unreachable"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "gridroute_searches_total"))

	// invalid searches are not measured
	assert.Equal(t, 2, histogramCount(t, reg, "gridroute_path_cost"))
	assert.Equal(t, 4, histogramCount(t, reg, "gridroute_expanded_nodes"))
}

func TestClassify(t *testing.T) {
	cases := map[error]string{
		nil:                        metrics.ResultFound,
		astar.ErrUnreachable:       metrics.ResultUnreachable,
		astar.ErrExpansionLimit:    metrics.ResultLimit,
		context.Canceled:           metrics.ResultCancelled,
		context.DeadlineExceeded:   metrics.ResultCancelled,
		lattice.ErrOutOfExtent:     metrics.ResultInvalid,
		astar.ErrOptionViolation:   metrics.ResultInvalid,
		lattice.ErrInvalidGeometry: metrics.ResultInvalid,
	}
	for err, want := range cases {
		assert.Equal(t, want, metrics.Classify(err), "%v", err)
	}
}

func histogramCount(t *testing.T, reg *prometheus.Registry, name string) int {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return int(mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}
