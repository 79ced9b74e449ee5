package attractor

import (
	"fmt"

	"github.com/katalvlaran/boolnet/core"
)

// ctxCheckMask throttles context polling in the hot loops: the deadline is
// consulted once per 4096 processed states.
const ctxCheckMask = 1<<12 - 1

// Analyze classifies the complete state space of net under the given update
// mode and returns the resulting Store.
//
// On success the Store is complete: every state in [0, 2^N) carries a
// record. If the size ceiling (WithMaxStates) or the context (WithContext)
// interrupts the pass, Analyze returns the partial Store together with an
// error wrapping ErrAborted — the partial result is never presented as
// complete.
//
// Complexity: O(2^N) amortized for Synchronous, O(2^N·N) for Asynchronous;
// O(2^N) auxiliary memory in both modes.
func Analyze(net *core.Network, mode Mode, opts ...Option) (*Store, error) {
	// 1. Validate input network and mode.
	if net == nil {
		return nil, ErrNetworkNil
	}
	if mode != Synchronous && mode != Asynchronous {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Enforce the size ceiling before touching memory.
	total := net.StateCount()
	if total > o.MaxStates {
		return &Store{mode: mode}, fmt.Errorf("%w: state space %d exceeds ceiling %d",
			ErrAborted, total, o.MaxStates)
	}

	// 4. Dispatch to the mode-specific classifier.
	if mode == Synchronous {
		return analyzeSynchronous(net, o)
	}
	return analyzeAsynchronous(net, o)
}
