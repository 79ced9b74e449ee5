// Package attractor defines types, options, and sentinel errors for
// state-space classification of Boolean networks.
package attractor

import (
	"context"
	"errors"
)

// Mode selects the update discipline under which the state space is analyzed.
type Mode int

const (
	// Synchronous updates all nodes at once: each state has exactly one
	// successor, the state space is a functional graph, and attractors are
	// its directed cycles.
	Synchronous Mode = iota
	// Asynchronous updates exactly one node per step: each state has up to N
	// successors, and attractors are the terminal (sink) strongly connected
	// components of the resulting multi-successor graph.
	Asynchronous
)

// String implements fmt.Stringer for diagnostics and file naming.
func (m Mode) String() string {
	switch m {
	case Synchronous:
		return "synchronous"
	case Asynchronous:
		return "asynchronous"
	default:
		return "unknown"
	}
}

// Unassigned marks a Record field that carries no value: the attractor id of
// an asynchronous transient state, the distance of any asynchronous state,
// and every field of a state the pass never reached (aborted runs).
const Unassigned = -1

// Record is the classification of a single state. Records are write-once:
// the analysis pass fills them, after which the Store is read-only.
type Record struct {
	// IsAttractor reports whether the state belongs to an attractor.
	IsAttractor bool
	// AttractorID identifies the attractor the state belongs to or, in
	// synchronous mode, eventually reaches. Ids are dense and 0-based, in
	// discovery order. Unassigned for asynchronous transient states.
	AttractorID int
	// Distance counts synchronous steps to the first attractor state:
	// 0 on the attractor itself, ≥1 for transient states. Always Unassigned
	// in asynchronous mode.
	Distance int
}

// Sentinel errors for classification and Store queries.
var (
	// ErrNetworkNil is returned when a nil network is passed to Analyze.
	ErrNetworkNil = errors.New("attractor: network is nil")
	// ErrUnknownMode is returned for a Mode other than Synchronous or Asynchronous.
	ErrUnknownMode = errors.New("attractor: unknown update mode")
	// ErrAborted reports that a size or time ceiling interrupted the pass;
	// the accompanying Store is partial (Complete reports false).
	ErrAborted = errors.New("attractor: analysis aborted before completion")
	// ErrStateOutOfRange is returned by Store queries for states outside [0, 2^N).
	ErrStateOutOfRange = errors.New("attractor: state out of range")
	// ErrModeMismatch is returned when Distance is queried on an
	// asynchronous-built Store.
	ErrModeMismatch = errors.New("attractor: distance is defined only for synchronous stores")
	// ErrAttractorIndex is returned for an attractor id that does not exist.
	ErrAttractorIndex = errors.New("attractor: attractor id out of range")
)

// DefaultMaxStates bounds the state space (2^N) analyzed without an explicit
// override: 2^24 records keep the dense bookkeeping arrays comfortably in
// memory on commodity hardware.
const DefaultMaxStates = 1 << 24

// Option configures optional behavior of Analyze.
type Option func(*Options)

// Options holds configurable parameters for a classification pass.
type Options struct {
	// Ctx allows cancellation or deadlines; defaults to context.Background().
	// Expiry mid-pass aborts with ErrAborted and a partial Store.
	Ctx context.Context

	// MaxStates caps the state-space size 2^N the pass will attempt.
	// Exceeding it aborts with ErrAborted before any allocation.
	MaxStates int
}

// DefaultOptions returns Options with a background context and the
// DefaultMaxStates size ceiling.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: DefaultMaxStates,
	}
}

// WithContext returns an Option that sets the pass context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates returns an Option that overrides the state-space ceiling.
// Non-positive values have no effect (the default is retained).
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxStates = n
		}
	}
}
