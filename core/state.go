package core

// Decode converts state s into its N-length bit vector. The encoding is
// little-endian: bits[i] is node i's value, contributing weight 2^i.
// Decode and Encode are total on their domains and mutually inverse.
//
// Complexity: O(N) time, O(N) space.
func (bn *Network) Decode(s State) ([]bool, error) {
	if err := bn.checkState(s); err != nil {
		return nil, err
	}
	bits := make([]bool, bn.n)
	for i := 0; i < bn.n; i++ {
		bits[i] = s&(1<<i) != 0
	}
	return bits, nil
}

// Encode converts an N-length bit vector back into its state integer,
// the exact inverse of Decode.
//
// Complexity: O(N) time, O(1) space.
func (bn *Network) Encode(bits []bool) (State, error) {
	if len(bits) != bn.n {
		return 0, ErrBitLength
	}
	var s State
	for i, b := range bits {
		if b {
			s |= 1 << i
		}
	}
	return s, nil
}

// Bit reports node i's value within state s.
func (bn *Network) Bit(s State, i int) (bool, error) {
	if err := bn.checkState(s); err != nil {
		return false, err
	}
	if i < 0 || i >= bn.n {
		return false, ErrNodeIndex
	}
	return s&(1<<i) != 0, nil
}
