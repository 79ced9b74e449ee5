// Package trajectory defines types, options, and sentinel errors for
// trajectory simulation and dataset sampling.
package trajectory

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/boolnet/core"
)

// Defaults for dataset shape, mirroring the reference benchmark pipeline.
const (
	// DefaultCount is the number of trajectories per dataset.
	DefaultCount = 1
	// DefaultLength is the number of recorded states per trajectory.
	DefaultLength = 10
	// DefaultSamplingFrequency records every state.
	DefaultSamplingFrequency = 1
	// DefaultMaxLength is the long-trajectory length for GenerateLong.
	DefaultMaxLength = 1000
	// DefaultTransientFraction is the transient share Sample aims for.
	DefaultTransientFraction = 0.5

	// defaultSeed backs the deterministic default RNG stream.
	defaultSeed int64 = 1
)

// Sentinel errors.
var (
	// ErrNetworkNil indicates a nil network.
	ErrNetworkNil = errors.New("trajectory: network is nil")
	// ErrStoreNil indicates a nil classification store.
	ErrStoreNil = errors.New("trajectory: classification store is nil")
	// ErrStoreIncomplete indicates a store from an aborted analysis pass;
	// occupancy counts over a partial store would be silently wrong.
	ErrStoreIncomplete = errors.New("trajectory: classification store is incomplete")
	// ErrStoreMismatch indicates a store sized for a different network.
	ErrStoreMismatch = errors.New("trajectory: store does not cover the network's state space")
	// ErrUnknownMode indicates an update mode outside the enum.
	ErrUnknownMode = errors.New("trajectory: unknown update mode")
	// ErrCount indicates a trajectory count below one.
	ErrCount = errors.New("trajectory: count must be at least 1")
	// ErrLength indicates a trajectory length below one.
	ErrLength = errors.New("trajectory: length must be at least 1")
	// ErrSamplingFrequency indicates a sampling frequency below one.
	ErrSamplingFrequency = errors.New("trajectory: sampling frequency must be at least 1")
	// ErrTransientFraction indicates a fraction outside [0, 1].
	ErrTransientFraction = errors.New("trajectory: transient fraction must lie in [0,1]")
	// ErrStartStates indicates start states that do not match the requested
	// count or lie outside the state space.
	ErrStartStates = errors.New("trajectory: invalid start states")
	// ErrInsufficientFragments indicates that too few long-trajectory
	// fragments satisfy the requested composition.
	ErrInsufficientFragments = errors.New("trajectory: not enough candidate fragments")
)

// Trajectory is one long simulated run annotated with how many of its states
// were transient versus on an attractor, per the classification store.
type Trajectory struct {
	States         []core.State
	TransientCount int
	AttractorCount int
}

// Dataset is a set of sampled trajectories plus the sampling frequency they
// were recorded at (consumers of the on-disk form need the frequency to
// reconstruct observation times).
type Dataset struct {
	Trajectories      [][]core.State
	SamplingFrequency int
}

// Option configures simulation and sampling.
type Option func(*Options)

// Options holds configurable parameters shared by Simulate, GenerateLong
// and Sample; each function reads the fields relevant to it.
type Options struct {
	// Count is the number of trajectories to produce (Simulate, Sample).
	Count int
	// Length is the number of recorded states per trajectory (Simulate, Sample).
	Length int
	// SamplingFrequency records every k-th state (Simulate, Sample).
	SamplingFrequency int
	// MaxLength is the long-trajectory length (GenerateLong).
	MaxLength int
	// TransientFraction is the desired share of transient states (Sample).
	TransientFraction float64
	// StartStates fixes Simulate's start states; nil draws them randomly.
	// When set, its length must equal Count.
	StartStates []core.State
	// RNG drives every random choice; nil selects the deterministic default
	// stream. Not goroutine-safe — do not share across concurrent calls.
	RNG *rand.Rand
}

// DefaultOptions returns the reference defaults.
func DefaultOptions() Options {
	return Options{
		Count:             DefaultCount,
		Length:            DefaultLength,
		SamplingFrequency: DefaultSamplingFrequency,
		MaxLength:         DefaultMaxLength,
		TransientFraction: DefaultTransientFraction,
	}
}

// WithCount sets the number of trajectories.
func WithCount(n int) Option {
	return func(o *Options) { o.Count = n }
}

// WithLength sets the recorded trajectory length.
func WithLength(n int) Option {
	return func(o *Options) { o.Length = n }
}

// WithSamplingFrequency records every k-th simulated state.
func WithSamplingFrequency(k int) Option {
	return func(o *Options) { o.SamplingFrequency = k }
}

// WithMaxLength sets the long-trajectory length for GenerateLong.
func WithMaxLength(n int) Option {
	return func(o *Options) { o.MaxLength = n }
}

// WithTransientFraction sets the transient share Sample aims for.
func WithTransientFraction(f float64) Option {
	return func(o *Options) { o.TransientFraction = f }
}

// WithStartStates fixes the simulation start states (length must equal the
// trajectory count).
func WithStartStates(ss []core.State) Option {
	return func(o *Options) { o.StartStates = append([]core.State(nil), ss...) }
}

// WithSeed selects a deterministic RNG derived from seed (0 → fixed default).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		s := seed
		if s == 0 {
			s = defaultSeed
		}
		o.RNG = rand.New(rand.NewSource(s))
	}
}

// WithRand installs an explicit RNG stream; nil has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.RNG = r
		}
	}
}
