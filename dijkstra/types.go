package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridroute/lattice"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source coordinate was provided.
	ErrEmptySource = errors.New("dijkstra: source coordinate is not set")

	// ErrNilGeometry indicates that a nil *lattice.Geometry was passed to Dijkstra.
	ErrNilGeometry = errors.New("dijkstra: geometry is nil")

	// ErrVertexNotFound indicates that the source is not a usable lattice position.
	ErrVertexNotFound = errors.New("dijkstra: source is not a traversable lattice position")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting coordinate (must be set and be a traversable lattice position).
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – positions whose distance would exceed it are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      lattice.Coordinate
	HasSource   bool
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting coordinate. Must be given.
func Source(c lattice.Coordinate) Option {
	return func(o *Options) {
		o.Source = c
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative or NaN values panic with
// ErrBadMaxDistance when the option is constructed.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no path map and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
