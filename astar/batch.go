package astar

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridroute/lattice"
)

// Query is one start/goal pair for FindPaths.
type Query struct {
	Start, Goal lattice.Coordinate
}

// Outcome pairs a Query with its Result and error.
type Outcome struct {
	Query  Query
	Result Result
	Err    error
}

// FindPaths runs FindPath for every query, at most Options.Workers at a time,
// sharing g read-only. Outcomes are returned in query order.
//
// Per-query failures (ErrUnreachable, invalid endpoints) are reported in
// Outcome.Err and do not stop the batch. Cancellation of ctx stops the batch;
// queries not yet finished carry the context error and FindPaths returns it.
func FindPaths(ctx context.Context, g *lattice.Geometry, queries []Query, opts ...Option) ([]Outcome, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	out := make([]Outcome, len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)

	callOpts := make([]Option, 0, len(opts)+1)
	callOpts = append(callOpts, opts...)
	callOpts = append(callOpts, WithContext(ctx))

	for i, q := range queries {
		i, q := i, q
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i] = Outcome{Query: q, Err: err}
				return err
			}
			res, err := FindPath(g, q.Start, q.Goal, callOpts...)
			out[i] = Outcome{Query: q, Result: res, Err: err}
			if ctxErr := ctx.Err(); ctxErr != nil && err == ctxErr {
				return err
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		for i := range out {
			if out[i].Err == nil && !out[i].Result.Found {
				out[i] = Outcome{Query: queries[i], Err: err}
			}
		}
		return out, err
	}
	return out, nil
}
