package sigma

import (
	"math/big"
	"testing"

	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/internal/testutils"
)

func TestAndSharedChallengeCompleteness(t *testing.T) {
	inst1, w1 := discreteLogInstance(t, 5)
	inst2, w2 := discreteLogInstance(t, 11)
	and := NewAnd(NewSchnorr(inst1), NewSchnorr(inst2))

	rng := testutils.NewDRNG([]byte("and-completeness"))
	witness := []group.Scalar{w1, w2}

	state, commitment, err := and.Commit(witness, rng)
	testutils.AssertNoError(t, "commit", err)

	challenge := inst1.LinearMap.Group.ScalarField().NewScalar(big.NewInt(777))
	response, err := and.Respond(state, challenge)
	testutils.AssertNoError(t, "respond", err)

	testutils.AssertNoError(t, "verify", and.Verify(commitment, challenge, response))
}

func TestAndRejectsIfEitherSubproofFlipped(t *testing.T) {
	inst1, w1 := discreteLogInstance(t, 5)
	inst2, w2 := discreteLogInstance(t, 11)
	and := NewAnd(NewSchnorr(inst1), NewSchnorr(inst2))

	rng := testutils.NewDRNG([]byte("and-flip"))
	state, commitment, err := and.Commit([]group.Scalar{w1, w2}, rng)
	testutils.AssertNoError(t, "commit", err)

	challenge := inst1.LinearMap.Group.ScalarField().NewScalar(big.NewInt(42))
	response, err := and.Respond(state, challenge)
	testutils.AssertNoError(t, "respond", err)

	flipped := make([]group.Scalar, len(response))
	copy(flipped, response)
	flipped[0] = flipped[0].Add(inst1.LinearMap.Group.ScalarField().NewScalar(big.NewInt(1)))

	if err := and.Verify(commitment, challenge, flipped); err == nil {
		t.Fatalf("expected verification to fail when the first sub-proof's response is corrupted")
	}

	flipped2 := make([]group.Scalar, len(response))
	copy(flipped2, response)
	flipped2[1] = flipped2[1].Add(inst2.LinearMap.Group.ScalarField().NewScalar(big.NewInt(1)))

	if err := and.Verify(commitment, challenge, flipped2); err == nil {
		t.Fatalf("expected verification to fail when the second sub-proof's response is corrupted")
	}
}

func TestAndSerializeRoundTrip(t *testing.T) {
	inst1, w1 := discreteLogInstance(t, 3)
	inst2, w2 := discreteLogInstance(t, 4)
	and := NewAnd(NewSchnorr(inst1), NewSchnorr(inst2))

	rng := testutils.NewDRNG([]byte("and-serialize"))
	_, commitment, err := and.Commit([]group.Scalar{w1, w2}, rng)
	testutils.AssertNoError(t, "commit", err)

	data := and.SerializeCommitment(commitment)
	testutils.AssertIntsEqual(t, "commitment byte length", and.CommitmentByteLength(), len(data))

	back, err := and.DeserializeCommitment(data)
	testutils.AssertNoError(t, "deserialize commitment", err)
	for i := range commitment {
		testutils.AssertBoolsEqual(t, "commitment element round-trips", true, commitment[i].Equal(back[i]))
	}
}
