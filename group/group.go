package group

import (
	"io"
	"math/big"
)

// Scalar is an element of a group's scalar field F_n, where n is the group
// order. Serialized as a fixed-width little-endian octet string per
// spec.md section 3.
type Scalar struct {
	v *big.Int
	n *big.Int
}

// Int returns the scalar's reduced representative in [0, n).
func (s Scalar) Int() *big.Int { return new(big.Int).Set(s.v) }

// Add returns s + o mod n.
func (s Scalar) Add(o Scalar) Scalar { return Scalar{v: mod(new(big.Int).Add(s.v, o.v), s.n), n: s.n} }

// Mul returns s * o mod n.
func (s Scalar) Mul(o Scalar) Scalar { return Scalar{v: mod(new(big.Int).Mul(s.v, o.v), s.n), n: s.n} }

// Sub returns s - o mod n.
func (s Scalar) Sub(o Scalar) Scalar { return Scalar{v: mod(new(big.Int).Sub(s.v, o.v), s.n), n: s.n} }

// Neg returns -s mod n.
func (s Scalar) Neg() Scalar { return Scalar{v: mod(new(big.Int).Neg(s.v), s.n), n: s.n} }

// IsZero reports whether s is the zero scalar.
func (s Scalar) IsZero() bool { return s.v.Sign() == 0 }

// Equal reports whether s and o denote the same residue mod n.
func (s Scalar) Equal(o Scalar) bool { return s.v.Cmp(o.v) == 0 }

func mod(v, n *big.Int) *big.Int { return new(big.Int).Mod(v, n) }

// Element is an opaque group element: a curve point returned by a Group
// implementation. Capability interfaces operate on Element rather than a
// concrete Point so the sigma/relation/codec/nizk packages stay generic
// over the backing curve.
type Element interface {
	// Add returns the sum of the receiver and o, both elements of the
	// same Group.
	Add(o Element) Element
	// Negate returns the additive inverse of the receiver.
	Negate() Element
	// ScalarMul returns k times the receiver.
	ScalarMul(k Scalar) Element
	// Equal reports whether the receiver and o denote the same element.
	Equal(o Element) bool
	// IsIdentity reports whether the receiver is the group's identity.
	IsIdentity() bool
}

// ScalarField abstracts a group's scalar field F_n, mirroring the small
// capability-interface split in frost/ciphersuite.go (Curve, Hashing)
// rather than a single monolithic Group base class.
type ScalarField interface {
	// Order returns n, the group order.
	Order() *big.Int
	// ScalarByteLength returns ceil(bitlen(n)/8), the fixed serialized
	// width of a scalar.
	ScalarByteLength() int
	// NewScalar reduces v modulo n.
	NewScalar(v *big.Int) Scalar
	// RandomScalar samples a uniform scalar in [0, n) from rng.
	RandomScalar(rng io.Reader) (Scalar, error)
	// SerializeScalars encodes scalars as fixed-width little-endian
	// octet strings, concatenated in order.
	SerializeScalars(scalars []Scalar) []byte
	// DeserializeScalars is the inverse of SerializeScalars. It returns
	// sigmaerr.MalformedInput if data's length is not a multiple of
	// ScalarByteLength().
	DeserializeScalars(data []byte) ([]Scalar, error)
}

// Group abstracts a prime-order group's element operations: generator,
// identity, and (de)serialization, mirroring frost.Curve's EcBaseMul/EcMul/
// EcAdd/EcSub split.
type Group interface {
	// Name identifies the group for ciphersuite registration and error
	// messages (e.g. "P-256").
	Name() string
	// ScalarField returns the group's scalar field F_n.
	ScalarField() ScalarField
	// Generator returns the group's fixed generator G.
	Generator() Element
	// Identity returns the group's identity element.
	Identity() Element
	// ElementByteLength returns the fixed serialized width of an
	// element (33 for P-256's and secp256k1's compressed encoding).
	ElementByteLength() int
	// SerializeElements encodes elements in the group's fixed-width
	// compressed form, concatenated in order.
	SerializeElements(elements []Element) []byte
	// DeserializeElements is the inverse of SerializeElements. It
	// returns sigmaerr.MalformedInput on a length that is not a
	// multiple of ElementByteLength(), or on a point not on the curve.
	DeserializeElements(data []byte) ([]Element, error)
}
