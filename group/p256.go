package group

import (
	"io"
	"math/big"
	"sync"

	"github.com/sigma-relation/nizk/sigmaerr"
)

// NIST P-256 (secp256r1) parameters, per spec.md section 4.2.
var (
	p256P = mustHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	p256N = mustHex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")
	p256B = mustHex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b")
	p256Gx = mustHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	p256Gy = mustHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("group: invalid hex constant " + s)
	}
	return v
}

// p256Group implements Group and ScalarField for NIST P-256. generator and
// identity are computed once and memoized, mirroring the teacher's
// Bip340Curve.Identity memoization idiom.
type p256Group struct {
	curve     Curve
	field     Field
	generator Element
	identity  Element
}

var (
	p256Once sync.Once
	p256Inst *p256Group
)

// P256 returns the NIST P-256 group backend, memoized across calls.
func P256() Group {
	p256Once.Do(func() {
		field := NewField(p256P)
		a := field.Elem(new(big.Int).Sub(p256P, big.NewInt(3)))
		b := field.Elem(p256B)
		curve := NewCurve(field, a, b)
		p256Inst = &p256Group{
			curve:     curve,
			field:     field,
			generator: p256Elt{curve.Affine(field.Elem(p256Gx), field.Elem(p256Gy))},
			identity:  p256Elt{curve.Identity()},
		}
	})
	return p256Inst
}

func (g *p256Group) Name() string { return "P-256" }

func (g *p256Group) ScalarField() ScalarField { return p256ScalarField{} }

func (g *p256Group) Generator() Element { return g.generator }

func (g *p256Group) Identity() Element { return g.identity }

func (g *p256Group) ElementByteLength() int { return 33 }

func (g *p256Group) SerializeElements(elements []Element) []byte {
	out := make([]byte, 0, len(elements)*33)
	for _, e := range elements {
		out = append(out, serializeP256Point(e.(p256Elt).p)...)
	}
	return out
}

func (g *p256Group) DeserializeElements(data []byte) ([]Element, error) {
	if len(data)%33 != 0 {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "p256: element data length is not a multiple of 33")
	}
	elements := make([]Element, 0, len(data)/33)
	for i := 0; i < len(data); i += 33 {
		pt, err := deserializeP256Point(g, data[i:i+33])
		if err != nil {
			return nil, err
		}
		elements = append(elements, p256Elt{pt})
	}
	return elements, nil
}

func serializeP256Point(pt Point) []byte {
	if pt.Infinity {
		return make([]byte, 33)
	}
	out := make([]byte, 33)
	if pt.Y.Int().Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	pt.X.Int().FillBytes(out[1:])
	return out
}

func deserializeP256Point(g *p256Group, data []byte) (Point, error) {
	if data[0] == 0x00 {
		allZero := true
		for _, b := range data[1:] {
			if b != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			return Point{}, sigmaerr.New(sigmaerr.MalformedInput, "p256: identity encoding must be all-zero")
		}
		return g.curve.Identity(), nil
	}
	if data[0] != 0x02 && data[0] != 0x03 {
		return Point{}, sigmaerr.New(sigmaerr.MalformedInput, "p256: invalid parity prefix byte")
	}

	x := g.field.Elem(new(big.Int).SetBytes(data[1:]))
	rhs := x.Mul(x).Mul(x).Add(g.curve.A.Mul(x)).Add(g.curve.B)
	y, err := rhs.Sqrt()
	if err != nil {
		return Point{}, sigmaerr.New(sigmaerr.MalformedInput, "p256: x has no corresponding y on the curve")
	}

	wantOdd := data[0] == 0x03
	if (y.Int().Bit(0) == 1) != wantOdd {
		y = y.Neg()
	}
	return g.curve.Affine(x, y), nil
}

// p256Elt wraps a Point to satisfy Element.
type p256Elt struct {
	p Point
}

func (e p256Elt) Add(o Element) Element      { return p256Elt{e.p.Add(o.(p256Elt).p)} }
func (e p256Elt) Negate() Element            { return p256Elt{e.p.Negate()} }
func (e p256Elt) ScalarMul(k Scalar) Element { return p256Elt{e.p.ScalarMul(k.Int())} }
func (e p256Elt) Equal(o Element) bool       { return e.p.Equal(o.(p256Elt).p) }
func (e p256Elt) IsIdentity() bool           { return e.p.Infinity }

// p256ScalarField implements ScalarField for P-256's group order n.
type p256ScalarField struct{}

func (p256ScalarField) Order() *big.Int { return new(big.Int).Set(p256N) }

func (p256ScalarField) ScalarByteLength() int {
	return (p256N.BitLen() + 7) / 8
}

func (p256ScalarField) NewScalar(v *big.Int) Scalar {
	return Scalar{v: mod(v, p256N), n: p256N}
}

func (f p256ScalarField) RandomScalar(rng io.Reader) (Scalar, error) {
	return randomScalar(rng, p256N)
}

func (f p256ScalarField) SerializeScalars(scalars []Scalar) []byte {
	return serializeScalarsLE(scalars, f.ScalarByteLength())
}

func (f p256ScalarField) DeserializeScalars(data []byte) ([]Scalar, error) {
	return deserializeScalarsLE(data, f.ScalarByteLength(), p256N)
}
