package sigma

import (
	"crypto/sha256"
	"io"

	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/sigmaerr"
)

var orProtocolID = padProtocolID("ietf sigma proof or composition")

// Or proves knowledge of a witness for at least one of a list of
// sub-protocols, without revealing which, using the
// Cramer-Damgard-Schoenmakers split: every non-witness branch is
// simulated with a prover-chosen challenge before the real challenge is
// known, and the witness branch's challenge is fixed afterward so that
// every branch's challenge sums to the shared Fiat-Shamir challenge.
//
// Each branch's challenge is carried explicitly in the proof rather than
// omitting one and reconstructing it from the sum; the verifier's job is
// simply to check that the n branch challenges sum to the shared
// challenge and that every branch verifies under its own. This costs one
// extra scalar in total over the minimal encoding but keeps prover and
// verifier free of index bookkeeping, and does not weaken witness
// indistinguishability: a simulated branch and a real branch are drawn
// from the same distribution once their challenge is fixed.
type Or struct {
	Protocols []Protocol
}

// NewOr composes protocols so that a witness for any one of them proves
// the disjunction.
func NewOr(protocols ...Protocol) *Or {
	return &Or{Protocols: protocols}
}

type orState struct {
	witnessIdx  int
	realState   ProverState
	simResponse [][]group.Scalar // per non-witness branch, in Protocols order; nil for witness branch
	simChal     []group.Scalar   // per non-witness branch challenge, in Protocols order; zero for witness branch
}

// CommitOr is Or's analogue of Commit: witnessIdx names the branch whose
// witness is known, witness is that branch's witness vector, and sf is
// the scalar field shared by every branch (branches over different
// groups are not supported by a single Or instance).
func (o *Or) CommitOr(witnessIdx int, witness []group.Scalar, sf group.ScalarField, rng io.Reader) (ProverState, []group.Element, error) {
	if witnessIdx < 0 || witnessIdx >= len(o.Protocols) {
		return nil, nil, sigmaerr.New(sigmaerr.RangeError, "or: witness index out of range")
	}

	commitment := make([]group.Element, len(o.Protocols))
	simResponse := make([][]group.Scalar, len(o.Protocols))
	simChal := make([]group.Scalar, len(o.Protocols))
	var realState ProverState

	for i, p := range o.Protocols {
		if i == witnessIdx {
			state, c, err := p.Commit(witness, rng)
			if err != nil {
				return nil, nil, err
			}
			realState = state
			if len(c) != 1 {
				return nil, nil, sigmaerr.New(sigmaerr.Unsupported, "or: sub-protocol commitment must be a single element per branch")
			}
			commitment[i] = c[0]
			continue
		}

		resp, err := p.SimulateResponse(rng)
		if err != nil {
			return nil, nil, err
		}
		chal, err := sf.RandomScalar(rng)
		if err != nil {
			return nil, nil, err
		}
		simCommit, err := p.SimulateCommitment(resp, chal)
		if err != nil {
			return nil, nil, err
		}
		if len(simCommit) != 1 {
			return nil, nil, sigmaerr.New(sigmaerr.Unsupported, "or: sub-protocol commitment must be a single element per branch")
		}
		commitment[i] = simCommit[0]
		simResponse[i] = resp
		simChal[i] = chal
	}

	return orState{witnessIdx: witnessIdx, realState: realState, simResponse: simResponse, simChal: simChal}, commitment, nil
}

// OrResponse is the wire-level payload for an Or proof: one challenge
// and one response vector per branch.
type OrResponse struct {
	challenges []group.Scalar
	responses  [][]group.Scalar
}

// RespondOr computes the real branch's challenge as
// sharedChallenge - sum(simulated challenges), derives its response, and
// returns every branch's (challenge, response) pair.
func (o *Or) RespondOr(state ProverState, sharedChallenge group.Scalar) (*OrResponse, error) {
	st, ok := state.(orState)
	if !ok {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "or: prover state has the wrong type")
	}

	realChal := sharedChallenge
	for i := range o.Protocols {
		if i == st.witnessIdx {
			continue
		}
		realChal = realChal.Sub(st.simChal[i])
	}

	realResp, err := o.Protocols[st.witnessIdx].Respond(st.realState, realChal)
	if err != nil {
		return nil, err
	}

	challenges := make([]group.Scalar, len(o.Protocols))
	responses := make([][]group.Scalar, len(o.Protocols))
	for i := range o.Protocols {
		if i == st.witnessIdx {
			challenges[i] = realChal
			responses[i] = realResp
			continue
		}
		challenges[i] = st.simChal[i]
		responses[i] = st.simResponse[i]
	}

	return &OrResponse{challenges: challenges, responses: responses}, nil
}

// VerifyOr checks that the branch challenges sum to sharedChallenge and
// that every branch verifies under its own (commitment, challenge,
// response).
func (o *Or) VerifyOr(commitment []group.Element, sharedChallenge group.Scalar, resp *OrResponse) error {
	if len(commitment) != len(o.Protocols) || len(resp.challenges) != len(o.Protocols) || len(resp.responses) != len(o.Protocols) {
		return sigmaerr.New(sigmaerr.ShapeMismatch, "or: commitment, challenge, or response count does not match branch count")
	}

	sum := resp.challenges[0]
	for i := 1; i < len(resp.challenges); i++ {
		sum = sum.Add(resp.challenges[i])
	}
	if !sum.Equal(sharedChallenge) {
		return sigmaerr.New(sigmaerr.VerificationFailed, "or: branch challenges do not sum to the shared challenge")
	}

	for i, p := range o.Protocols {
		if err := p.Verify([]group.Element{commitment[i]}, resp.challenges[i], resp.responses[i]); err != nil {
			return sigmaerr.New(sigmaerr.VerificationFailed, "or: branch failed to verify under its own challenge")
		}
	}
	return nil
}

// SerializeResponseFor serializes an OrResponse as a branch-challenge
// table followed by each branch's own response encoding.
func (o *Or) SerializeResponseFor(resp *OrResponse, sf group.ScalarField) []byte {
	out := make([]byte, 0)
	out = append(out, sf.SerializeScalars(resp.challenges)...)
	for i, p := range o.Protocols {
		out = append(out, p.SerializeResponse(resp.responses[i])...)
	}
	return out
}

// DeserializeResponseFor is the inverse of SerializeResponseFor.
func (o *Or) DeserializeResponseFor(data []byte, sf group.ScalarField) (*OrResponse, error) {
	chalLen := sf.ScalarByteLength() * len(o.Protocols)
	if len(data) < chalLen {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "or: response data shorter than the branch challenge table")
	}
	challenges, err := sf.DeserializeScalars(data[:chalLen])
	if err != nil {
		return nil, err
	}

	responses := make([][]group.Scalar, len(o.Protocols))
	offset := chalLen
	for i, p := range o.Protocols {
		n := p.ResponseByteLength()
		if offset+n > len(data) {
			return nil, sigmaerr.New(sigmaerr.MalformedInput, "or: response data shorter than expected")
		}
		r, err := p.DeserializeResponse(data[offset : offset+n])
		if err != nil {
			return nil, err
		}
		responses[i] = r
		offset += n
	}
	if offset != len(data) {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "or: trailing bytes after all branch responses")
	}

	return &OrResponse{challenges: challenges, responses: responses}, nil
}

// InstanceLabel binds every branch's label into a single digest, tagged
// so it cannot collide with an And's or an atomic Schnorr's label.
func (o *Or) InstanceLabel() []byte {
	h := sha256.New()
	h.Write([]byte("OR_PROOF"))
	for _, p := range o.Protocols {
		h.Write(p.InstanceLabel())
	}
	return h.Sum(nil)
}

func (o *Or) ProtocolID() []byte { return orProtocolID }
