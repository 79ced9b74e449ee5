// Package netio owns the toolkit's persistence surfaces: the line-oriented
// network definition format, the trajectory-dataset layout consumed by
// external inference tools, and YAML experiment configurations.
//
// Network format (one network per file):
//
//	6
//	[0, 3, 5]; [1, 1, 1, 0, 1, 0, 1, 0]
//	[2]; [1, 0]
//	...
//
// The first line is the node count; each following line is one node's
// ordered parent list and its truth table (0/1, little-endian row order),
// separated by a semicolon. A parentless node reads `[]; [0]`.
//
// Dataset format: a header `#trajectory   time   x0 ... xN-1`, one row per
// observation (trajectory index 1-based, observation time advancing by the
// sampling frequency, then one 0/1 column per node), and a `#` terminator
// line after each trajectory.
//
// Experiment files are YAML (gopkg.in/yaml.v3): node count, update mode,
// seed, and generation/sampling knobs, validated on load with defaults for
// everything omitted.
//
// Errors:
//
//   - ErrNetworkFormat  — malformed network file (wrapped with line detail).
//   - ErrNetworkNil     — nil network passed to a writer.
//   - ErrDatasetNil     — nil dataset passed to the writer.
//   - ErrExperiment     — experiment configuration failed validation.
//   - ErrUnknownMode    — mode string is neither "synchronous" nor "asynchronous".
package netio
