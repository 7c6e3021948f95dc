package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/lattice"
)

// routeRequest is one query on the wire.
type routeRequest struct {
	From [2]float64 `json:"from"`
	To   [2]float64 `json:"to"`
}

func (r routeRequest) query() astar.Query {
	return astar.Query{
		Start: lattice.Coordinate{X: r.From[0], Y: r.From[1]},
		Goal:  lattice.Coordinate{X: r.To[0], Y: r.To[1]},
	}
}

// routeResponse is one search outcome on the wire.
type routeResponse struct {
	Found    bool         `json:"found"`
	Cost     float64      `json:"cost"`
	Path     [][2]float64 `json:"path"`
	Expanded int          `json:"expanded"`
	Error    string       `json:"error,omitempty"`
}

func newRouteResponse(res astar.Result, err error) routeResponse {
	out := routeResponse{
		Found:    res.Found,
		Cost:     res.Cost,
		Path:     make([][2]float64, len(res.Path)),
		Expanded: res.Stats.Expanded,
	}
	for i, c := range res.Path {
		out.Path[i] = [2]float64{c.X, c.Y}
	}
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

// routeOutcome is what one shared search hands to every waiting request.
type routeOutcome struct {
	res astar.Result
	err error
}

// newServer routes POST /route to FindPath over g and GET /metrics to reg.
// Identical requests in flight at the same time share one search; a
// searchTimeout > 0 bounds each search, and a search cut short answers 503.
func newServer(g *lattice.Geometry, reg *prometheus.Registry, searchTimeout time.Duration, opts ...astar.Option) http.Handler {
	var group singleflight.Group

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/route", func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req routeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		q := req.query()
		v, _, shared := group.Do(fmt.Sprint(q.Start, q.Goal), func() (interface{}, error) {
			// the shared search must outlive whichever request started it
			ctx := context.WithoutCancel(r.Context())
			if searchTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, searchTimeout)
				defer cancel()
			}
			callOpts := append([]astar.Option{astar.WithContext(ctx)}, opts...)
			res, err := astar.FindPath(g, q.Start, q.Goal, callOpts...)
			return routeOutcome{res: res, err: err}, nil
		})
		out := v.(routeOutcome)
		if *debug {
			log.Printf("route %s: %v → %v shared=%t err=%v", reqID, q.Start, q.Goal, shared, out.err)
		}

		status := http.StatusOK
		switch {
		case out.err == nil, errors.Is(out.err, astar.ErrUnreachable):
		case errors.Is(out.err, lattice.ErrInvalidGeometry):
			status = http.StatusUnprocessableEntity
		default:
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(newRouteResponse(out.res, out.err))
	})
	return mux
}
