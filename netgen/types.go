// Package netgen defines options and sentinel errors for random Boolean
// network construction.
package netgen

import (
	"errors"
	"math/rand"
)

// DefaultMaxParents caps each node's parent count when no override is given.
const DefaultMaxParents = 3

// defaultSeed is the fixed seed used when callers pass seed==0 or no RNG at
// all. Arbitrary but stable, so default runs stay reproducible.
const defaultSeed int64 = 1

// Sentinel errors for generation parameters.
var (
	// ErrNodeCount indicates a requested node count below one.
	ErrNodeCount = errors.New("netgen: node count must be at least 1")
	// ErrMaxParents indicates a negative parent cap.
	ErrMaxParents = errors.New("netgen: max parents must be non-negative")
)

// Option configures random network generation.
type Option func(*Options)

// Options holds configurable parameters for Random.
type Options struct {
	// MaxParents caps the parent count drawn per node; clamped to the node
	// count when larger. Default DefaultMaxParents.
	MaxParents int

	// RNG drives every random choice. Nil selects a deterministic default
	// stream (defaultSeed). math/rand.Rand is not goroutine-safe: do not
	// share one across concurrent generations.
	RNG *rand.Rand
}

// DefaultOptions returns Options with the default parent cap and no RNG
// (the deterministic default stream is picked at generation time).
func DefaultOptions() Options {
	return Options{MaxParents: DefaultMaxParents}
}

// WithSeed returns an Option selecting a deterministic RNG derived from
// seed. Seed 0 maps to the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		s := seed
		if s == 0 {
			s = defaultSeed
		}
		o.RNG = rand.New(rand.NewSource(s))
	}
}

// WithRand returns an Option installing an explicit RNG stream.
// A nil r has no effect (the default stream is retained).
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.RNG = r
		}
	}
}

// WithMaxParents returns an Option overriding the per-node parent cap.
func WithMaxParents(k int) Option {
	return func(o *Options) {
		o.MaxParents = k
	}
}
