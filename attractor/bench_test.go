package attractor_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/core"
)

// benchNetwork builds a deterministic random n-node network (≤3 parents per
// node), sized so a full pass fits a benchmark iteration comfortably.
func benchNetwork(b *testing.B, n int) *core.Network {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	nodes := make([]core.Node, n)
	for i := range nodes {
		k := rng.Intn(4)
		truth := make([]bool, 1<<k)
		for r := range truth {
			truth[r] = rng.Intn(2) == 1
		}
		nodes[i] = core.Node{Parents: rng.Perm(n)[:k], Truth: truth}
	}
	bn, err := core.New(nodes)
	if err != nil {
		b.Fatal(err)
	}
	return bn
}

func BenchmarkAnalyzeSynchronous14(b *testing.B) {
	bn := benchNetwork(b, 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := attractor.Analyze(bn, attractor.Synchronous); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyzeAsynchronous14(b *testing.B) {
	bn := benchNetwork(b, 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := attractor.Analyze(bn, attractor.Asynchronous); err != nil {
			b.Fatal(err)
		}
	}
}
