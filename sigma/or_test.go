package sigma

import (
	"math/big"
	"testing"

	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/internal/testutils"
)

func TestOrCompletenessRegardlessOfWitnessBranch(t *testing.T) {
	inst1, w1 := discreteLogInstance(t, 5)
	inst2, w2 := discreteLogInstance(t, 11)
	or := NewOr(NewSchnorr(inst1), NewSchnorr(inst2))
	sf := inst1.LinearMap.Group.ScalarField()
	witnesses := map[int]group.Scalar{0: w1, 1: w2}

	for _, witnessIdx := range []int{0, 1} {
		t.Run("", func(t *testing.T) {
			witness := witnesses[witnessIdx]

			rng := testutils.NewDRNG([]byte("or-completeness"))
			state, commitment, err := or.CommitOr(witnessIdx, []group.Scalar{witness}, sf, rng)
			testutils.AssertNoError(t, "commit", err)

			challenge := sf.NewScalar(big.NewInt(2024))
			resp, err := or.RespondOr(state, challenge)
			testutils.AssertNoError(t, "respond", err)

			testutils.AssertNoError(t, "verify", or.VerifyOr(commitment, challenge, resp))
		})
	}
}

func TestOrRejectsWhenNoWitnessIsKnown(t *testing.T) {
	inst1, _ := discreteLogInstance(t, 5)
	inst2, _ := discreteLogInstance(t, 11)
	or := NewOr(NewSchnorr(inst1), NewSchnorr(inst2))
	sf := inst1.LinearMap.Group.ScalarField()

	// Neither branch's image matches this witness for either instance.
	wrongWitness := sf.NewScalar(big.NewInt(999))
	rng := testutils.NewDRNG([]byte("or-no-witness"))

	state, commitment, err := or.CommitOr(0, []group.Scalar{wrongWitness}, sf, rng)
	testutils.AssertNoError(t, "commit", err)

	challenge := sf.NewScalar(big.NewInt(5))
	resp, err := or.RespondOr(state, challenge)
	testutils.AssertNoError(t, "respond", err)

	if err := or.VerifyOr(commitment, challenge, resp); err == nil {
		t.Fatalf("expected OR verification to fail when neither branch's witness is actually known")
	}
}

func TestOrChallengesSumToShared(t *testing.T) {
	inst1, w1 := discreteLogInstance(t, 5)
	inst2, _ := discreteLogInstance(t, 11)
	or := NewOr(NewSchnorr(inst1), NewSchnorr(inst2))
	sf := inst1.LinearMap.Group.ScalarField()

	rng := testutils.NewDRNG([]byte("or-sum"))
	state, _, err := or.CommitOr(0, []group.Scalar{w1}, sf, rng)
	testutils.AssertNoError(t, "commit", err)

	challenge := sf.NewScalar(big.NewInt(31415))
	resp, err := or.RespondOr(state, challenge)
	testutils.AssertNoError(t, "respond", err)

	sum := resp.challenges[0].Add(resp.challenges[1])
	testutils.AssertBoolsEqual(t, "branch challenges sum to the shared challenge", true, sum.Equal(challenge))
}

func TestOrSerializeResponseRoundTrip(t *testing.T) {
	inst1, w1 := discreteLogInstance(t, 5)
	inst2, _ := discreteLogInstance(t, 11)
	or := NewOr(NewSchnorr(inst1), NewSchnorr(inst2))
	sf := inst1.LinearMap.Group.ScalarField()

	rng := testutils.NewDRNG([]byte("or-serialize"))
	state, _, err := or.CommitOr(0, []group.Scalar{w1}, sf, rng)
	testutils.AssertNoError(t, "commit", err)

	challenge := sf.NewScalar(big.NewInt(17))
	resp, err := or.RespondOr(state, challenge)
	testutils.AssertNoError(t, "respond", err)

	data := or.SerializeResponseFor(resp, sf)
	back, err := or.DeserializeResponseFor(data, sf)
	testutils.AssertNoError(t, "deserialize", err)

	for i := range resp.challenges {
		testutils.AssertBoolsEqual(t, "challenge round-trips", true, resp.challenges[i].Equal(back.challenges[i]))
	}
	for i := range resp.responses {
		for j := range resp.responses[i] {
			testutils.AssertBoolsEqual(t, "response round-trips", true, resp.responses[i][j].Equal(back.responses[i][j]))
		}
	}
}
