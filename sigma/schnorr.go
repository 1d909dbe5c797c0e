package sigma

import (
	"io"

	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/relation"
	"github.com/sigma-relation/nizk/sigmaerr"
)

// schnorrProtocolID is the 64-byte fixed identifier for single linear
// relation Schnorr proofs.
var schnorrProtocolID = padProtocolID("ietf sigma proof linear relation")

// Schnorr proves knowledge of a witness w such that
// instance.LinearMap(w) == instance.Image, the generalized Schnorr proof
// described in spec.md section 5.1.
type Schnorr struct {
	Instance *relation.Instance
}

// NewSchnorr returns a Schnorr protocol bound to inst.
func NewSchnorr(inst *relation.Instance) *Schnorr {
	return &Schnorr{Instance: inst}
}

// schnorrState is the opaque state threaded from Commit to Respond.
type schnorrState struct {
	witness []group.Scalar
	nonces  []group.Scalar
}

func (s *Schnorr) scalarField() group.ScalarField {
	return s.Instance.LinearMap.Group.ScalarField()
}

// Commit implements Protocol.
func (s *Schnorr) Commit(witness []group.Scalar, rng io.Reader) (ProverState, []group.Element, error) {
	if len(witness) != s.Instance.LinearMap.NumScalars {
		return nil, nil, sigmaerr.New(sigmaerr.ShapeMismatch, "schnorr: witness length does not match num_scalars")
	}

	sf := s.scalarField()
	nonces := make([]group.Scalar, s.Instance.LinearMap.NumScalars)
	for i := range nonces {
		nonce, err := sf.RandomScalar(rng)
		if err != nil {
			return nil, nil, err
		}
		nonces[i] = nonce
	}

	commitment, err := s.Instance.LinearMap.Evaluate(nonces)
	if err != nil {
		return nil, nil, err
	}
	return schnorrState{witness: witness, nonces: nonces}, commitment, nil
}

// Respond implements Protocol: response[i] = nonce[i] + witness[i] * challenge.
func (s *Schnorr) Respond(state ProverState, challenge group.Scalar) ([]group.Scalar, error) {
	st, ok := state.(schnorrState)
	if !ok {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "schnorr: prover state has the wrong type")
	}

	response := make([]group.Scalar, len(st.nonces))
	for i := range st.nonces {
		response[i] = st.nonces[i].Add(st.witness[i].Mul(challenge))
	}
	return response, nil
}

// Verify implements Protocol: checks commitment[i] + image[i]*challenge
// equals LinearMap(response)[i] for every constraint i.
func (s *Schnorr) Verify(commitment []group.Element, challenge group.Scalar, response []group.Scalar) error {
	lm := s.Instance.LinearMap
	if len(commitment) != lm.NumConstraints {
		return sigmaerr.New(sigmaerr.ShapeMismatch, "schnorr: commitment length does not match num_constraints")
	}
	if len(response) != lm.NumScalars {
		return sigmaerr.New(sigmaerr.ShapeMismatch, "schnorr: response length does not match num_scalars")
	}

	expected, err := lm.Evaluate(response)
	if err != nil {
		return err
	}

	for i := 0; i < lm.NumConstraints; i++ {
		got := commitment[i].Add(s.Instance.Image[i].ScalarMul(challenge))
		if !got.Equal(expected[i]) {
			return sigmaerr.New(sigmaerr.VerificationFailed, "schnorr: verification equation failed")
		}
	}
	return nil
}

// SimulateResponse implements Protocol by drawing a uniformly random
// response vector.
func (s *Schnorr) SimulateResponse(rng io.Reader) ([]group.Scalar, error) {
	sf := s.scalarField()
	response := make([]group.Scalar, s.Instance.LinearMap.NumScalars)
	for i := range response {
		v, err := sf.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		response[i] = v
	}
	return response, nil
}

// SimulateCommitment implements Protocol:
// commitment[i] = LinearMap(response)[i] - image[i]*challenge, the unique
// commitment making (commitment, challenge, response) verify.
func (s *Schnorr) SimulateCommitment(response []group.Scalar, challenge group.Scalar) ([]group.Element, error) {
	lm := s.Instance.LinearMap
	evaluated, err := lm.Evaluate(response)
	if err != nil {
		return nil, err
	}
	commitment := make([]group.Element, lm.NumConstraints)
	for i := 0; i < lm.NumConstraints; i++ {
		commitment[i] = evaluated[i].Add(s.Instance.Image[i].ScalarMul(challenge).Negate())
	}
	return commitment, nil
}

func (s *Schnorr) SerializeCommitment(commitment []group.Element) []byte {
	return s.Instance.LinearMap.Group.SerializeElements(commitment)
}

func (s *Schnorr) SerializeResponse(response []group.Scalar) []byte {
	return s.scalarField().SerializeScalars(response)
}

func (s *Schnorr) DeserializeCommitment(data []byte) ([]group.Element, error) {
	return s.Instance.LinearMap.Group.DeserializeElements(data)
}

func (s *Schnorr) DeserializeResponse(data []byte) ([]group.Scalar, error) {
	return s.scalarField().DeserializeScalars(data)
}

func (s *Schnorr) CommitmentByteLength() int {
	return s.Instance.LinearMap.NumConstraints * s.Instance.LinearMap.Group.ElementByteLength()
}

func (s *Schnorr) ResponseByteLength() int {
	return s.Instance.LinearMap.NumScalars * s.scalarField().ScalarByteLength()
}

func (s *Schnorr) NumScalars() int { return s.Instance.LinearMap.NumScalars }

func (s *Schnorr) NumConstraints() int { return s.Instance.LinearMap.NumConstraints }

func (s *Schnorr) InstanceLabel() []byte { return s.Instance.Label() }

func (s *Schnorr) ProtocolID() []byte { return schnorrProtocolID }
