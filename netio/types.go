// Package netio defines sentinel errors for the persistence surfaces.
package netio

import "errors"

// Sentinel errors.
var (
	// ErrNetworkFormat indicates a malformed network definition file.
	ErrNetworkFormat = errors.New("netio: malformed network file")
	// ErrNetworkNil indicates a nil network passed to a writer.
	ErrNetworkNil = errors.New("netio: network is nil")
	// ErrDatasetNil indicates a nil dataset passed to the writer.
	ErrDatasetNil = errors.New("netio: dataset is nil")
	// ErrExperiment indicates an invalid experiment configuration.
	ErrExperiment = errors.New("netio: invalid experiment configuration")
	// ErrUnknownMode indicates an unrecognized update-mode name.
	ErrUnknownMode = errors.New("netio: unknown update mode")
)
