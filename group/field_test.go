package group

import (
	"math/big"
	"testing"

	"github.com/sigma-relation/nizk/internal/testutils"
	"github.com/sigma-relation/nizk/sigmaerr"
)

func TestFieldArithmetic(t *testing.T) {
	p, _ := new(big.Int).SetString("2305843009213693951", 10) // a Mersenne prime, 2^61-1
	f := NewField(p)

	a := f.Elem(big.NewInt(17))
	b := f.Elem(big.NewInt(5))

	testutils.AssertBigIntsEqual(t, "add", big.NewInt(22), a.Add(b).Int())
	testutils.AssertBigIntsEqual(t, "sub", big.NewInt(12), a.Sub(b).Int())
	testutils.AssertBigIntsEqual(t, "mul", big.NewInt(85), a.Mul(b).Int())
	testutils.AssertBoolsEqual(t, "div then mul recovers a", true, a.Div(b).Mul(b).Equal(a))
	testutils.AssertBoolsEqual(t, "a.Inv() * a == 1", true, a.Inv().Mul(a).Equal(f.One()))
}

func TestFieldSqrt(t *testing.T) {
	p, _ := new(big.Int).SetString("2305843009213693951", 10)
	f := NewField(p)

	square := f.Elem(big.NewInt(49))
	root, err := square.Sqrt()
	testutils.AssertNoError(t, "sqrt of a perfect square", err)
	testutils.AssertBoolsEqual(t, "root squared recovers input", true, root.Mul(root).Equal(square))

	nonSquareExists := false
	for i := int64(2); i < 50; i++ {
		cand := f.Elem(big.NewInt(i))
		if !cand.IsSquare() {
			nonSquareExists = true
			_, err := cand.Sqrt()
			testutils.AssertErrorIs(t, "sqrt of a non-residue fails", err, sigmaerr.ErrMalformedInput)
			break
		}
	}
	if !nonSquareExists {
		t.Fatalf("expected to find at least one quadratic non-residue below 50")
	}
}

func TestFieldZeroAndOne(t *testing.T) {
	p := big.NewInt(101)
	f := NewField(p)

	testutils.AssertBoolsEqual(t, "zero.IsZero()", true, f.Zero().IsZero())
	testutils.AssertBoolsEqual(t, "one is not zero", false, f.One().IsZero())
	testutils.AssertBoolsEqual(t, "zero + one == one", true, f.Zero().Add(f.One()).Equal(f.One()))
}
