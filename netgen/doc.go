// Package netgen constructs random Boolean networks with reproducible
// seeding, the ground-truth inputs for state-space analysis and
// benchmark-dataset generation.
//
// What:
//
//   - Random(n, opts...): for each of the n nodes, draws a parent count in
//     [0, MaxParents], samples that many distinct parents uniformly, and
//     fills the truth table with independent fair bits. The result is always
//     a valid core.Network.
//
// Why:
//
//   - Benchmark pipelines need many networks of controlled size whose exact
//     dynamics are unknown but reproducible: same seed, same network.
//
// Options:
//
//   - WithSeed(seed)        deterministic RNG from a seed (seed 0 → fixed default).
//   - WithRand(r)           explicit *rand.Rand; caller controls the stream.
//   - WithMaxParents(k)     cap on parents per node (default 3, clamped to n).
//
// Errors:
//
//   - ErrNodeCount   n < 1.
//   - ErrMaxParents  negative parent cap.
//
// Determinism: netgen never reads time or global RNG state; with no RNG
// option it uses a fixed default seed, so even "unseeded" runs reproduce.
package netgen
