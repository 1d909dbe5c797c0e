package group

import (
	"math/big"
	"testing"

	"github.com/sigma-relation/nizk/internal/testutils"
)

func TestSecp256k1GeneratorSerializeRoundTrip(t *testing.T) {
	g := Secp256k1()
	gen := g.Generator()

	data := g.SerializeElements([]Element{gen})
	testutils.AssertUintsEqual(t, "serialized length", 33, uint64(len(data)))

	back, err := g.DeserializeElements(data)
	testutils.AssertNoError(t, "deserialize", err)
	testutils.AssertBoolsEqual(t, "generator round-trips", true, gen.Equal(back[0]))
}

func TestSecp256k1ScalarMulLinearity(t *testing.T) {
	g := Secp256k1()
	sf := g.ScalarField()
	gen := g.Generator()

	a := sf.NewScalar(big.NewInt(13))
	b := sf.NewScalar(big.NewInt(29))

	lhs := gen.ScalarMul(a.Add(b))
	rhs := gen.ScalarMul(a).Add(gen.ScalarMul(b))
	testutils.AssertBoolsEqual(t, "(a+b)*G == a*G + b*G", true, lhs.Equal(rhs))
}

func TestSecp256k1IdentityIsAbsorbing(t *testing.T) {
	g := Secp256k1()
	gen := g.Generator()
	id := g.Identity()

	testutils.AssertBoolsEqual(t, "id.IsIdentity()", true, id.IsIdentity())
	testutils.AssertBoolsEqual(t, "gen + id == gen", true, gen.Add(id).Equal(gen))

	zero := g.ScalarField().NewScalar(big.NewInt(0))
	testutils.AssertBoolsEqual(t, "0*gen is the identity", true, gen.ScalarMul(zero).IsIdentity())
}
