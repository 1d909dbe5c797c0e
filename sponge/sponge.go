// Package sponge implements the duplex-sponge transcript construction used
// by the Fiat-Shamir transform (see the codec and nizk packages): a
// stateful absorb/squeeze oracle whose output is fully determined by the
// ordered sequence of operations performed on it since construction.
//
// These constructions are ad hoc wrappers over a hash primitive rather
// than true sponges; per spec.md section 9 they suffice for Fiat-Shamir
// challenge derivation given the codec's domain separation, but they MUST
// NOT be repurposed as general-purpose XOFs or PRFs.
package sponge

// Sponge is a stateful absorb/squeeze transcript oracle.
type Sponge interface {
	// Absorb appends data to the transcript. A zero-length absorb is a
	// well-defined no-op.
	Absorb(data []byte)
	// Squeeze produces length bytes of output determined by every
	// absorb/squeeze call made so far, then folds that output back into
	// the transcript so later squeezes are domain-separated from it. A
	// zero-length squeeze is a well-defined no-op.
	Squeeze(length int) []byte
	// Clone returns an independent copy of the sponge's current state;
	// operations on the clone do not affect the receiver.
	Clone() Sponge
}
