// Package trajectory simulates Boolean-network dynamics and assembles the
// trajectory datasets used to benchmark network-inference tooling.
//
// What:
//
//   - Simulate: random-start trajectories under either update discipline,
//     with a sampling frequency (record every k-th state) — the quick way
//     to produce a Dataset.
//   - GenerateLong: one long trajectory per state of the whole state space,
//     annotated with transient/attractor occupancy counts taken from a
//     completed classification Store.
//   - Sample: draws dataset fragments out of long trajectories, accepting
//     only fragments with enough transient and attractor content, then
//     trimming them deterministically to the requested composition.
//
// Why:
//
//   - Inference benchmarks need datasets whose transient/attractor balance
//     is controlled; the classification Store is what makes that balance
//     measurable per state.
//
// Stepping:
//
//   - Synchronous: the unique NextState successor.
//   - Asynchronous: one uniformly random node is updated per step; a no-op
//     update repeats the current state (self-transitions are real steps
//     here, unlike in the classifier's successor relation).
//
// Options:
//
//   - WithCount, WithLength, WithSamplingFrequency — dataset shape.
//   - WithMaxLength — long-trajectory length for GenerateLong.
//   - WithTransientFraction — desired transient share for Sample.
//   - WithStartStates — fixed starts for Simulate (otherwise random).
//   - WithSeed / WithRand — deterministic randomness, netgen-style.
//
// Determinism: same network, store, and seed reproduce every dataset bit
// for bit.
package trajectory
