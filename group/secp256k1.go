package group

import (
	"io"
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcec"

	"github.com/sigma-relation/nizk/sigmaerr"
)

// secp256k1Group is a second Group implementation, built directly on
// github.com/btcsuite/btcd/btcec's KoblitzCurve rather than this package's
// hand-rolled Curve. It exists to exercise spec.md's stated extension
// point ("other groups must fit the group interface") and to keep the
// teacher's btcec dependency wired to a real component, generalizing
// ephemeral.SymmetricEcdhKey's one-off ECDH use of btcec into a full
// Group/ScalarField pair. It is registered as an optional ciphersuite
// family, not one of the two required P-256 suites.
type secp256k1Group struct {
	curve     *btcec.KoblitzCurve
	field     Field
	generator Element
	identity  Element
}

var (
	secp256k1Once sync.Once
	secp256k1Inst *secp256k1Group
)

// Secp256k1 returns the secp256k1 group backend, memoized across calls.
func Secp256k1() Group {
	secp256k1Once.Do(func() {
		curve := btcec.S256()
		field := NewField(curve.P)
		secp256k1Inst = &secp256k1Group{
			curve:     curve,
			field:     field,
			generator: secp256k1Elt{x: curve.Gx, y: curve.Gy, infinity: false},
			identity:  secp256k1Elt{infinity: true},
		}
	})
	return secp256k1Inst
}

func (g *secp256k1Group) Name() string { return "secp256k1" }

func (g *secp256k1Group) ScalarField() ScalarField { return secp256k1ScalarField{n: g.curve.N} }

func (g *secp256k1Group) Generator() Element { return g.generator }

func (g *secp256k1Group) Identity() Element { return g.identity }

func (g *secp256k1Group) ElementByteLength() int { return 33 }

func (g *secp256k1Group) SerializeElements(elements []Element) []byte {
	out := make([]byte, 0, len(elements)*33)
	for _, e := range elements {
		out = append(out, g.serializePoint(e.(secp256k1Elt))...)
	}
	return out
}

func (g *secp256k1Group) serializePoint(e secp256k1Elt) []byte {
	if e.infinity {
		return make([]byte, 33)
	}
	out := make([]byte, 33)
	if e.y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	e.x.FillBytes(out[1:])
	return out
}

func (g *secp256k1Group) DeserializeElements(data []byte) ([]Element, error) {
	if len(data)%33 != 0 {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "secp256k1: element data length is not a multiple of 33")
	}
	elements := make([]Element, 0, len(data)/33)
	for i := 0; i < len(data); i += 33 {
		e, err := g.deserializePoint(data[i : i+33])
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, nil
}

func (g *secp256k1Group) deserializePoint(data []byte) (secp256k1Elt, error) {
	if data[0] == 0x00 {
		for _, b := range data[1:] {
			if b != 0 {
				return secp256k1Elt{}, sigmaerr.New(sigmaerr.MalformedInput, "secp256k1: identity encoding must be all-zero")
			}
		}
		return secp256k1Elt{infinity: true}, nil
	}
	if data[0] != 0x02 && data[0] != 0x03 {
		return secp256k1Elt{}, sigmaerr.New(sigmaerr.MalformedInput, "secp256k1: invalid parity prefix byte")
	}

	x := g.field.Elem(new(big.Int).SetBytes(data[1:]))
	// y^2 = x^3 + b (secp256k1's a = 0).
	b := g.field.Elem(g.curve.B)
	rhs := x.Mul(x).Mul(x).Add(b)
	y, err := rhs.Sqrt()
	if err != nil {
		return secp256k1Elt{}, sigmaerr.New(sigmaerr.MalformedInput, "secp256k1: x has no corresponding y on the curve")
	}

	wantOdd := data[0] == 0x03
	if (y.Int().Bit(0) == 1) != wantOdd {
		y = y.Neg()
	}
	return secp256k1Elt{x: x.Int(), y: y.Int()}, nil
}

// secp256k1Elt wraps affine coordinates and delegates Add/ScalarMul to
// btcec.KoblitzCurve, the teacher's own pattern for wrapping a library
// curve (see frost.Bip340Curve.EcAdd/EcMul).
type secp256k1Elt struct {
	x, y     *big.Int
	infinity bool
}

func (e secp256k1Elt) Add(o Element) Element {
	other := o.(secp256k1Elt)
	curve := btcec.S256()
	if e.infinity {
		return other
	}
	if other.infinity {
		return e
	}
	x, y := curve.Add(e.x, e.y, other.x, other.y)
	if x.Sign() == 0 && y.Sign() == 0 {
		return secp256k1Elt{infinity: true}
	}
	return secp256k1Elt{x: x, y: y}
}

func (e secp256k1Elt) Negate() Element {
	if e.infinity {
		return e
	}
	return secp256k1Elt{x: e.x, y: new(big.Int).Sub(btcec.S256().P, e.y)}
}

func (e secp256k1Elt) ScalarMul(k Scalar) Element {
	curve := btcec.S256()
	kmod := new(big.Int).Mod(k.Int(), curve.N)
	if kmod.Sign() == 0 || e.infinity {
		return secp256k1Elt{infinity: true}
	}
	x, y := curve.ScalarMult(e.x, e.y, kmod.Bytes())
	if x.Sign() == 0 && y.Sign() == 0 {
		return secp256k1Elt{infinity: true}
	}
	return secp256k1Elt{x: x, y: y}
}

func (e secp256k1Elt) Equal(o Element) bool {
	other := o.(secp256k1Elt)
	if e.infinity || other.infinity {
		return e.infinity && other.infinity
	}
	return e.x.Cmp(other.x) == 0 && e.y.Cmp(other.y) == 0
}

func (e secp256k1Elt) IsIdentity() bool { return e.infinity }

// secp256k1ScalarField implements ScalarField for secp256k1's group order n.
type secp256k1ScalarField struct {
	n *big.Int
}

func (f secp256k1ScalarField) Order() *big.Int { return new(big.Int).Set(f.n) }

func (f secp256k1ScalarField) ScalarByteLength() int {
	return (f.n.BitLen() + 7) / 8
}

func (f secp256k1ScalarField) NewScalar(v *big.Int) Scalar {
	return Scalar{v: mod(v, f.n), n: f.n}
}

func (f secp256k1ScalarField) RandomScalar(rng io.Reader) (Scalar, error) {
	return randomScalar(rng, f.n)
}

func (f secp256k1ScalarField) SerializeScalars(scalars []Scalar) []byte {
	return serializeScalarsLE(scalars, f.ScalarByteLength())
}

func (f secp256k1ScalarField) DeserializeScalars(data []byte) ([]Scalar, error) {
	return deserializeScalarsLE(data, f.ScalarByteLength(), f.n)
}
