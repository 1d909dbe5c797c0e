package sponge

import "golang.org/x/crypto/sha3"

// Shake128Sponge maintains an append-only buffer B. Absorb appends to B;
// Squeeze(L) produces SHAKE128(B)[:L] and appends that output to B so
// later squeezes are domain-separated by prior output, per spec.md
// section 4.3.
type Shake128Sponge struct {
	buffer []byte
}

// NewShake128Sponge returns a Shake128Sponge seeded with iv as its initial
// buffer contents.
func NewShake128Sponge(iv []byte) *Shake128Sponge {
	buf := make([]byte, len(iv))
	copy(buf, iv)
	return &Shake128Sponge{buffer: buf}
}

// Absorb implements Sponge.
func (s *Shake128Sponge) Absorb(data []byte) {
	s.buffer = append(s.buffer, data...)
}

// Squeeze implements Sponge.
func (s *Shake128Sponge) Squeeze(length int) []byte {
	out := make([]byte, length)
	h := sha3.NewShake128()
	h.Write(s.buffer)
	h.Read(out)
	s.buffer = append(s.buffer, out...)
	return out
}

// Clone implements Sponge.
func (s *Shake128Sponge) Clone() Sponge {
	buf := make([]byte, len(s.buffer))
	copy(buf, s.buffer)
	return &Shake128Sponge{buffer: buf}
}
