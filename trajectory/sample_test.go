package trajectory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/core"
	"github.com/katalvlaran/boolnet/trajectory"
)

// sampleFixture prepares a synchronous store plus long trajectories for the
// 3-node network.
func sampleFixture(t *testing.T) (*core.Network, *attractor.Store, []trajectory.Trajectory) {
	t.Helper()
	bn := threeNodeNetwork(t)
	st := syncStore(t, bn)
	long, err := trajectory.GenerateLong(bn, st, trajectory.WithMaxLength(20))
	require.NoError(t, err)
	return bn, st, long
}

// TestSample_ParameterValidation covers the eager rejections.
func TestSample_ParameterValidation(t *testing.T) {
	_, st, long := sampleFixture(t)

	_, err := trajectory.Sample(long, nil)
	assert.ErrorIs(t, err, trajectory.ErrStoreNil)
	_, err = trajectory.Sample(long, st, trajectory.WithCount(0))
	assert.ErrorIs(t, err, trajectory.ErrCount)
	_, err = trajectory.Sample(long, st, trajectory.WithLength(0))
	assert.ErrorIs(t, err, trajectory.ErrLength)
	_, err = trajectory.Sample(long, st, trajectory.WithSamplingFrequency(0))
	assert.ErrorIs(t, err, trajectory.ErrSamplingFrequency)
	_, err = trajectory.Sample(long, st, trajectory.WithTransientFraction(1.5))
	assert.ErrorIs(t, err, trajectory.ErrTransientFraction)
}

// TestSample_Composition: every sampled fragment has the exact requested
// transient/attractor split, in original simulation order.
func TestSample_Composition(t *testing.T) {
	_, st, long := sampleFixture(t)

	// Length 4 at fraction 0.5 → exactly 2 transient + 2 attractor states.
	// Only the orbits from states 2 and 6 carry two transient states, so at
	// most two candidates exist at frequency 1.
	out, err := trajectory.Sample(long, st,
		trajectory.WithCount(2),
		trajectory.WithLength(4),
		trajectory.WithTransientFraction(0.5),
		trajectory.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, out, 2)

	for _, frag := range out {
		require.Len(t, frag, 4)
		transient, attr := 0, 0
		sawAttractor := false
		for _, s := range frag {
			isAttr, err := st.IsAttractor(s)
			require.NoError(t, err)
			if isAttr {
				attr++
				sawAttractor = true
			} else {
				transient++
				// Transient states precede the attractor segment.
				assert.False(t, sawAttractor, "transient state after attractor segment")
			}
		}
		assert.Equal(t, 2, transient)
		assert.Equal(t, 2, attr)
	}
}

// TestSample_PureAttractorFraction: fraction 0 asks for attractor-only
// fragments.
func TestSample_PureAttractorFraction(t *testing.T) {
	_, st, long := sampleFixture(t)

	out, err := trajectory.Sample(long, st,
		trajectory.WithCount(2),
		trajectory.WithLength(5),
		trajectory.WithTransientFraction(0),
		trajectory.WithSeed(2))
	require.NoError(t, err)

	for _, frag := range out {
		require.Len(t, frag, 5)
		for _, s := range frag {
			isAttr, err := st.IsAttractor(s)
			require.NoError(t, err)
			assert.True(t, isAttr)
		}
	}
}

// TestSample_InsufficientFragments: the 3-node functional graph has tails of
// length at most 2, so fragments with 5 transient states cannot exist.
func TestSample_InsufficientFragments(t *testing.T) {
	_, st, long := sampleFixture(t)

	_, err := trajectory.Sample(long, st,
		trajectory.WithCount(1),
		trajectory.WithLength(5),
		trajectory.WithTransientFraction(1))
	assert.ErrorIs(t, err, trajectory.ErrInsufficientFragments)
}

// TestSample_Deterministic: same seed, same sample.
func TestSample_Deterministic(t *testing.T) {
	_, st, long := sampleFixture(t)

	opts := []trajectory.Option{
		trajectory.WithCount(2),
		trajectory.WithLength(4),
		trajectory.WithTransientFraction(0.5),
		trajectory.WithSeed(17),
	}
	a, err := trajectory.Sample(long, st, opts...)
	require.NoError(t, err)
	b, err := trajectory.Sample(long, st, opts...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
