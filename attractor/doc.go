// Package attractor classifies every state of a Boolean network as transient
// or attractor-bound, under both update disciplines, and serves the result
// through a dense read-only Store.
//
// What:
//
//   - Analyze(net, Synchronous):  walks the deterministic functional graph,
//     detecting newly formed cycles or merging into already-classified
//     states; every state receives an attractor id and its distance (number
//     of synchronous steps) to the attractor.
//   - Analyze(net, Asynchronous): runs an iterative Tarjan decomposition
//     over the implicit multi-successor graph and marks terminal SCCs
//     (no edge leaving the component) as attractors. No distance metric is
//     defined in this mode.
//   - Store: one ClassificationRecord per state, indexed directly by the
//     state integer, plus the attractors as ordered state sets.
//
// Why:
//
//   - Trajectory sampling and benchmark-dataset construction need to know,
//     for every possible start state, whether the system has already settled
//     and where it will settle; this package is that oracle.
//
// Complexity:
//
//   - Synchronous:  O(2^N) amortized — each functional-graph edge is walked
//     at most once across all start states.
//   - Asynchronous: O(2^N · N) time, O(2^N) auxiliary space; the successor
//     relation stays implicit (regenerated on demand), never materialized.
//
// Options:
//
//   - WithContext(ctx)    — time ceiling / cancellation; an expired context
//     aborts the pass and returns the partial Store with ErrAborted.
//   - WithMaxStates(n)    — size ceiling on 2^N, same abort discipline.
//
// Errors:
//
//   - ErrNetworkNil       — nil *core.Network.
//   - ErrUnknownMode      — mode is neither Synchronous nor Asynchronous.
//   - ErrAborted          — a ceiling was exceeded; the partial Store is
//     still returned, never silently presented as complete.
//   - ErrStateOutOfRange  — Store query for a state outside [0, 2^N).
//   - ErrModeMismatch     — Distance queried on an asynchronous Store.
//   - ErrAttractorIndex   — AttractorMembers for an id that does not exist.
//
// The pass is single-threaded and purely CPU-bound; the input Network is
// read-only and may be shared freely. Re-running Analyze on an unmodified
// network yields identical records — there is no hidden randomness.
package attractor
