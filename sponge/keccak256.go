package sponge

import "golang.org/x/crypto/sha3"

// Keccak256Sponge maintains a pair (state, buffer). Absorb accumulates
// into buffer. Squeeze(L) computes output by iterated SHA3-256 starting
// from SHA3-256(state || buffer), truncated to L, then folds the output
// back into state and clears buffer, per spec.md section 4.3.
type Keccak256Sponge struct {
	state  []byte
	buffer []byte
}

// NewKeccak256Sponge returns a Keccak256Sponge seeded with iv as its
// initial state.
func NewKeccak256Sponge(iv []byte) *Keccak256Sponge {
	state := make([]byte, len(iv))
	copy(state, iv)
	return &Keccak256Sponge{state: state}
}

// Absorb implements Sponge.
func (s *Keccak256Sponge) Absorb(data []byte) {
	s.buffer = append(s.buffer, data...)
}

// Squeeze implements Sponge. A zero-length squeeze is a no-op: it does
// not fold anything into state or clear buffer, so it cannot influence
// the output of a later Squeeze call.
func (s *Keccak256Sponge) Squeeze(length int) []byte {
	if length == 0 {
		return []byte{}
	}

	digest := sha3.Sum256(append(append([]byte{}, s.state...), s.buffer...))

	out := make([]byte, 0, length)
	block := digest
	for len(out) < length {
		out = append(out, block[:]...)
		block = sha3.Sum256(block[:])
	}
	out = out[:length]

	newState := sha3.Sum256(append(append(append([]byte{}, s.state...), s.buffer...), out...))
	s.state = newState[:]
	s.buffer = nil

	return out
}

// Clone implements Sponge.
func (s *Keccak256Sponge) Clone() Sponge {
	state := make([]byte, len(s.state))
	copy(state, s.state)
	buffer := make([]byte, len(s.buffer))
	copy(buffer, s.buffer)
	return &Keccak256Sponge{state: state, buffer: buffer}
}
