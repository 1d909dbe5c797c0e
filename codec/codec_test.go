package codec

import (
	"testing"

	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/internal/testutils"
	"github.com/sigma-relation/nizk/sponge"
)

func TestInitLengthPrefixedEncoding(t *testing.T) {
	c := NewSchnorrCodec(group.P256())
	out, err := c.Init([]byte("abc"), []byte("xy"))
	testutils.AssertNoError(t, "init", err)

	want := []byte{0, 0, 0, 3, 'a', 'b', 'c', 0, 0, 0, 2, 'x', 'y'}
	testutils.AssertBytesEqual(t, want, out)
}

func TestInitDistinguishesSessionFromLabel(t *testing.T) {
	c := NewSchnorrCodec(group.P256())
	a, err := c.Init([]byte("ab"), []byte("c"))
	testutils.AssertNoError(t, "init a", err)
	b, err := c.Init([]byte("a"), []byte("bc"))
	testutils.AssertNoError(t, "init b", err)

	if string(a) == string(b) {
		t.Fatalf("expected length-prefixed encoding to disambiguate session id vs instance label boundaries")
	}
}

func TestProverMessageAbsorbsSerializedElements(t *testing.T) {
	g := group.P256()
	c := NewSchnorrCodec(g)
	gen := g.Generator()

	s1 := sponge.NewShake128Sponge([]byte("iv"))
	c.ProverMessage(s1, []group.Element{gen})
	out1 := s1.Squeeze(32)

	s2 := sponge.NewShake128Sponge([]byte("iv"))
	s2.Absorb(g.SerializeElements([]group.Element{gen}))
	out2 := s2.Squeeze(32)

	testutils.AssertBytesEqual(t, out2, out1)
}

func TestVerifierChallengeIsDeterministic(t *testing.T) {
	g := group.P256()
	c := NewSchnorrCodec(g)

	s1 := sponge.NewShake128Sponge([]byte("same-iv"))
	c.ProverMessage(s1, []group.Element{g.Generator()})
	chal1 := c.VerifierChallenge(s1)

	s2 := sponge.NewShake128Sponge([]byte("same-iv"))
	c.ProverMessage(s2, []group.Element{g.Generator()})
	chal2 := c.VerifierChallenge(s2)

	testutils.AssertBoolsEqual(t, "challenge is a deterministic function of the absorbed transcript", true, chal1.Equal(chal2))
}
