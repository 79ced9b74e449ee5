package netio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolnet/core"
	"github.com/katalvlaran/boolnet/netio"
)

// sixNodeNetwork is the worked 6-node example, exercising multi-parent
// nodes, single-parent nodes, and bracketed truth tables of every size used
// in practice.
func sixNodeNetwork(t *testing.T) *core.Network {
	t.Helper()
	bn, err := core.New([]core.Node{
		{Parents: []int{0, 3, 5}, Truth: []bool{true, true, true, false, true, false, true, false}},
		{Parents: []int{2}, Truth: []bool{true, false}},
		{Parents: []int{1, 5}, Truth: []bool{true, true, true, false}},
		{Parents: []int{0, 3}, Truth: []bool{true, true, false, true}},
		{Parents: []int{0, 1, 3, 5}, Truth: []bool{false, false, true, true, true, false, true, false, true, true, false, false, false, false, true, false}},
		{Parents: []int{5}, Truth: []bool{false, true}},
	})
	require.NoError(t, err)
	return bn
}

// TestWriteNetwork_Format pins the exact serialized form of a small network.
func TestWriteNetwork_Format(t *testing.T) {
	bn, err := core.New([]core.Node{
		{Parents: nil, Truth: []bool{false}},
		{Parents: []int{0, 1}, Truth: []bool{true, false, false, true}},
	})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, netio.WriteNetwork(&sb, bn))
	assert.Equal(t, "2\n[]; [0]\n[0, 1]; [1, 0, 0, 1]\n", sb.String())
}

// TestNetwork_RoundTrip: write → read reproduces the full definition.
func TestNetwork_RoundTrip(t *testing.T) {
	bn := sixNodeNetwork(t)

	var sb strings.Builder
	require.NoError(t, netio.WriteNetwork(&sb, bn))
	back, err := netio.ReadNetwork(strings.NewReader(sb.String()))
	require.NoError(t, err)

	require.Equal(t, bn.NodeCount(), back.NodeCount())
	for i := 0; i < bn.NodeCount(); i++ {
		want, err := bn.Node(i)
		require.NoError(t, err)
		got, err := back.Node(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "node %d", i)
	}
}

// TestReadNetwork_IgnoresBlankLines: blank separators are tolerated.
func TestReadNetwork_IgnoresBlankLines(t *testing.T) {
	in := "\n1\n\n[]; [1]\n\n"
	bn, err := netio.ReadNetwork(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, bn.NodeCount())
}

// TestReadNetwork_FormatErrors covers the structural rejections.
func TestReadNetwork_FormatErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"bad node count", "many\n"},
		{"non-positive node count", "0\n"},
		{"missing node line", "2\n[]; [0]\n"},
		{"missing separator", "1\n[] [0]\n"},
		{"unbracketed parents", "1\n0; [0]\n"},
		{"non-integer parent", "2\n[x]; [0, 1]\n[]; [0]\n"},
		{"truth value not binary", "1\n[]; [2]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netio.ReadNetwork(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, netio.ErrNetworkFormat)
		})
	}
}

// TestReadNetwork_SemanticErrors: structurally fine files still go through
// core validation.
func TestReadNetwork_SemanticErrors(t *testing.T) {
	_, err := netio.ReadNetwork(strings.NewReader("1\n[5]; [0, 1]\n"))
	assert.ErrorIs(t, err, core.ErrParentIndex)

	_, err = netio.ReadNetwork(strings.NewReader("1\n[0]; [1]\n"))
	assert.ErrorIs(t, err, core.ErrTruthTableLength)
}

// TestWriteNetwork_NilNetwork rejects nil input.
func TestWriteNetwork_NilNetwork(t *testing.T) {
	var sb strings.Builder
	assert.ErrorIs(t, netio.WriteNetwork(&sb, nil), netio.ErrNetworkNil)
}
