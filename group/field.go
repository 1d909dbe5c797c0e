// Package group implements the prime field and elliptic curve arithmetic
// underlying this module's group backends (group.go, p256.go,
// secp256k1.go), plus the group/scalar-field capability interfaces those
// backends satisfy.
package group

import (
	"math/big"

	"github.com/sigma-relation/nizk/sigmaerr"
)

// Field is a prime field GF(p). It is a value type: all arithmetic returns
// a new Elt rather than mutating its receiver.
type Field struct {
	p *big.Int
}

// NewField returns GF(p).
func NewField(p *big.Int) Field {
	return Field{p: new(big.Int).Set(p)}
}

// Elt is an element of a Field, always held reduced modulo the field's
// prime.
type Elt struct {
	v *big.Int
	f Field
}

// Elem reduces v modulo f's prime and returns the resulting element.
func (f Field) Elem(v *big.Int) Elt {
	return Elt{v: new(big.Int).Mod(v, f.p), f: f}
}

// Zero returns the additive identity of f.
func (f Field) Zero() Elt { return f.Elem(big.NewInt(0)) }

// One returns the multiplicative identity of f.
func (f Field) One() Elt { return f.Elem(big.NewInt(1)) }

// Int returns the element's reduced representative in [0, p).
func (e Elt) Int() *big.Int { return new(big.Int).Set(e.v) }

// IsZero reports whether e is the field's additive identity.
func (e Elt) IsZero() bool { return e.v.Sign() == 0 }

// Equal reports whether e and o are the same field element.
func (e Elt) Equal(o Elt) bool { return e.v.Cmp(o.v) == 0 }

// Add returns e + o.
func (e Elt) Add(o Elt) Elt { return e.f.Elem(new(big.Int).Add(e.v, o.v)) }

// Sub returns e - o.
func (e Elt) Sub(o Elt) Elt { return e.f.Elem(new(big.Int).Sub(e.v, o.v)) }

// Mul returns e * o.
func (e Elt) Mul(o Elt) Elt { return e.f.Elem(new(big.Int).Mul(e.v, o.v)) }

// Neg returns -e.
func (e Elt) Neg() Elt { return e.f.Elem(new(big.Int).Neg(e.v)) }

// Pow returns e^k for a non-negative exponent k.
func (e Elt) Pow(k *big.Int) Elt {
	return e.f.Elem(new(big.Int).Exp(e.v, k, e.f.p))
}

// Inv returns the Fermat inverse e^(p-2), the multiplicative inverse of e
// mod p. Callers must not invoke Inv on the zero element.
func (e Elt) Inv() Elt {
	exp := new(big.Int).Sub(e.f.p, big.NewInt(2))
	return e.Pow(exp)
}

// Div returns e / o via the Fermat inverse of o.
func (e Elt) Div(o Elt) Elt { return e.Mul(o.Inv()) }

// IsSquare reports whether e is a quadratic residue mod p, using Euler's
// criterion: e is a square iff e^((p-1)/2) == 1 (zero is considered a
// square).
func (e Elt) IsSquare() bool {
	if e.IsZero() {
		return true
	}
	exp := new(big.Int).Rsh(new(big.Int).Sub(e.f.p, big.NewInt(1)), 1)
	return e.Pow(exp).v.Cmp(big.NewInt(1)) == 0
}

// Sqrt returns a square root of e when p ≡ 3 (mod 4), computed directly as
// e^((p+1)/4). It returns sigmaerr.Unsupported if p mod 4 != 3, and
// sigmaerr.MalformedInput if e has no square root.
func (e Elt) Sqrt() (Elt, error) {
	four := big.NewInt(4)
	mod4 := new(big.Int).Mod(e.f.p, four)
	if mod4.Cmp(big.NewInt(3)) != 0 {
		return Elt{}, sigmaerr.New(sigmaerr.Unsupported, "field prime is not congruent to 3 mod 4")
	}
	if !e.IsSquare() {
		return Elt{}, sigmaerr.New(sigmaerr.MalformedInput, "element is not a quadratic residue")
	}
	exp := new(big.Int).Rsh(new(big.Int).Add(e.f.p, big.NewInt(1)), 2)
	return e.Pow(exp), nil
}
