package group

import "math/big"

// Curve is a short-Weierstrass elliptic curve y^2 = x^3 + ax + b over a
// prime field, the arithmetic backing every Group implementation in this
// package. It deliberately mirrors the textbook affine addition formulas
// from spec.md section 4.1 instead of wrapping crypto/elliptic, since the
// sqrt/Legendre primitives in field.go are needed regardless and crypto/elliptic
// does not expose field-level operations.
type Curve struct {
	Field Field
	A, B  Elt
}

// NewCurve returns the curve y^2 = x^3 + ax + b over field.
func NewCurve(field Field, a, b Elt) Curve {
	return Curve{Field: field, A: a, B: b}
}

// Point is a point on a Curve, or the point at infinity (the curve's
// identity element) when Infinity is true.
type Point struct {
	Curve    Curve
	X, Y     Elt
	Infinity bool
}

// Identity returns the point at infinity for c.
func (c Curve) Identity() Point {
	return Point{Curve: c, Infinity: true}
}

// Affine constructs the point (x, y) on c without verifying it lies on the
// curve; callers that need that guarantee should use OnCurve first.
func (c Curve) Affine(x, y Elt) Point {
	return Point{Curve: c, X: x, Y: y}
}

// OnCurve reports whether (x, y) satisfies y^2 = x^3 + ax + b.
func (c Curve) OnCurve(x, y Elt) bool {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(c.A.Mul(x)).Add(c.B)
	return lhs.Equal(rhs)
}

// Equal reports whether p and o denote the same point.
func (p Point) Equal(o Point) bool {
	if p.Infinity || o.Infinity {
		return p.Infinity && o.Infinity
	}
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// Negate returns -p.
func (p Point) Negate() Point {
	if p.Infinity {
		return p
	}
	return p.Curve.Affine(p.X, p.Y.Neg())
}

// Add implements the textbook affine addition law from spec.md section
// 4.1: identity is absorbing, equal-x/equal-y doubles (or returns identity
// if y = 0), equal-x/unequal-y returns identity, and distinct-x uses the
// secant slope.
func (p Point) Add(q Point) Point {
	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}

	curve := p.Curve

	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return p.double()
		}
		// Equal x, unequal y: the points are inverses of one another.
		return curve.Identity()
	}

	// Distinct-x addition: s = (y2 - y1) / (x2 - x1).
	s := q.Y.Sub(p.Y).Div(q.X.Sub(p.X))
	x3 := s.Mul(s).Sub(p.X).Sub(q.X)
	y3 := s.Mul(p.X.Sub(x3)).Sub(p.Y)
	return curve.Affine(x3, y3)
}

func (p Point) double() Point {
	if p.Y.IsZero() {
		return p.Curve.Identity()
	}
	curve := p.Curve
	two := curve.Field.Elem(big.NewInt(2))
	three := curve.Field.Elem(big.NewInt(3))

	// s = (3x^2 + a) / 2y
	s := three.Mul(p.X).Mul(p.X).Add(curve.A).Div(two.Mul(p.Y))
	x3 := s.Mul(s).Sub(p.X).Sub(p.X)
	y3 := s.Mul(p.X.Sub(x3)).Sub(p.Y)
	return curve.Affine(x3, y3)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Negate())
}

// ScalarMul returns k*p via binary double-and-add over the non-negative
// magnitude of k; a negative k negates p first. Per spec.md section 4.1,
// this is not constant-time and MUST NOT be relied on for side-channel
// resistance.
func (p Point) ScalarMul(k *big.Int) Point {
	if k.Sign() < 0 {
		return p.Negate().ScalarMul(new(big.Int).Neg(k))
	}

	result := p.Curve.Identity()
	addend := p
	n := new(big.Int).Set(k)
	zero := big.NewInt(0)
	for n.Cmp(zero) > 0 {
		if n.Bit(0) == 1 {
			result = result.Add(addend)
		}
		addend = addend.double()
		n.Rsh(n, 1)
	}
	return result
}
