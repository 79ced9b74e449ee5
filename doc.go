// Package boolnet is an in-memory toolkit for finite Boolean regulatory
// networks — from the network model itself to full state-space attractor
// analysis and benchmark-dataset assembly.
//
// 🚀 What is boolnet?
//
//	A small, focused library that brings together:
//		• Network model: N nodes, ordered parent lists, little-endian truth tables
//		• State codec: integer state ↔ N-bit vector, bijective and allocation-free
//		• Synchronous analysis: functional-graph tail/cycle classification
//		• Asynchronous analysis: terminal-SCC attractors via iterative Tarjan
//		• Random network generation with reproducible seeding
//		• Trajectory simulation and dataset sampling for inference benchmarks
//		• Text and YAML persistence surfaces plus a cobra CLI
//
// ✨ Why choose boolnet?
//
//   - Dense by design — every per-state structure is a flat array indexed by
//     the state integer, never a hashed map
//   - Exact — every one of the 2^N states is classified, with hard ceilings
//     (size and context deadline) that abort loudly instead of truncating
//   - Deterministic — same network, same records; same seed, same trajectories
//
// Everything is organized under flat subpackages:
//
//	core/       — Network, Node, State: the model and its codec
//	attractor/  — classifiers for both update disciplines + the record Store
//	netgen/     — random network construction
//	trajectory/ — trajectory simulation, long-run sampling, dataset assembly
//	netio/      — network/dataset text formats and YAML experiment configs
//	cmd/boolnet — the command-line front end
//
// Quick ASCII example (3 nodes, synchronous functional graph):
//
//	2 ──▶ 0 ──▶ (1)    6 ──▶ 4 ──▶ (5)    7 ──▶ (3)
//
//	states 1, 3 and 5 are fixed points; everything else is transient.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/boolnet
package boolnet
