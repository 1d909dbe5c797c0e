package sigma

import (
	"crypto/sha256"
	"io"

	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/sigmaerr"
)

var andProtocolID = padProtocolID("ietf sigma proof and composition")

// And proves knowledge of witnesses for every sub-protocol in a list,
// under a single shared challenge. Witness, commitment and response
// vectors are the concatenation of each sub-protocol's own vector, in
// sub-protocol order.
type And struct {
	Protocols []Protocol
}

// NewAnd composes protocols under a single shared challenge.
func NewAnd(protocols ...Protocol) *And {
	return &And{Protocols: protocols}
}

type andState struct {
	states []ProverState
}

func (a *And) splitScalars(flat []group.Scalar) ([][]group.Scalar, error) {
	out := make([][]group.Scalar, len(a.Protocols))
	offset := 0
	for i, p := range a.Protocols {
		n := p.NumScalars()
		if offset+n > len(flat) {
			return nil, sigmaerr.New(sigmaerr.ShapeMismatch, "and: witness vector shorter than the sum of sub-protocol witness lengths")
		}
		out[i] = flat[offset : offset+n]
		offset += n
	}
	if offset != len(flat) {
		return nil, sigmaerr.New(sigmaerr.ShapeMismatch, "and: witness vector longer than the sum of sub-protocol witness lengths")
	}
	return out, nil
}

func (a *And) splitElements(flat []group.Element) ([][]group.Element, error) {
	out := make([][]group.Element, len(a.Protocols))
	offset := 0
	for i, p := range a.Protocols {
		n := p.NumConstraints()
		if offset+n > len(flat) {
			return nil, sigmaerr.New(sigmaerr.ShapeMismatch, "and: element vector shorter than the sum of sub-protocol commitment lengths")
		}
		out[i] = flat[offset : offset+n]
		offset += n
	}
	if offset != len(flat) {
		return nil, sigmaerr.New(sigmaerr.ShapeMismatch, "and: element vector longer than the sum of sub-protocol commitment lengths")
	}
	return out, nil
}

// Commit implements Protocol: witness is the concatenation of every
// sub-protocol's witness vector, in order.
func (a *And) Commit(witness []group.Scalar, rng io.Reader) (ProverState, []group.Element, error) {
	perSub, err := a.splitScalars(witness)
	if err != nil {
		return nil, nil, err
	}

	states := make([]ProverState, len(a.Protocols))
	commitment := make([]group.Element, 0, a.NumConstraints())
	for i, p := range a.Protocols {
		state, c, err := p.Commit(perSub[i], rng)
		if err != nil {
			return nil, nil, err
		}
		states[i] = state
		commitment = append(commitment, c...)
	}
	return andState{states: states}, commitment, nil
}

// Respond implements Protocol, applying the shared challenge to every
// sub-protocol and concatenating their responses.
func (a *And) Respond(state ProverState, challenge group.Scalar) ([]group.Scalar, error) {
	st, ok := state.(andState)
	if !ok {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "and: prover state has the wrong type")
	}

	response := make([]group.Scalar, 0, a.NumScalars())
	for i, p := range a.Protocols {
		r, err := p.Respond(st.states[i], challenge)
		if err != nil {
			return nil, err
		}
		response = append(response, r...)
	}
	return response, nil
}

// Verify implements Protocol, checking every sub-protocol against the
// shared challenge.
func (a *And) Verify(commitment []group.Element, challenge group.Scalar, response []group.Scalar) error {
	perCommit, err := a.splitElements(commitment)
	if err != nil {
		return err
	}
	perResponse, err := a.splitScalars(response)
	if err != nil {
		return err
	}
	for i, p := range a.Protocols {
		if err := p.Verify(perCommit[i], challenge, perResponse[i]); err != nil {
			return err
		}
	}
	return nil
}

// SimulateResponse draws an independent simulated response for every
// sub-protocol and concatenates them.
func (a *And) SimulateResponse(rng io.Reader) ([]group.Scalar, error) {
	response := make([]group.Scalar, 0, a.NumScalars())
	for _, p := range a.Protocols {
		r, err := p.SimulateResponse(rng)
		if err != nil {
			return nil, err
		}
		response = append(response, r...)
	}
	return response, nil
}

// SimulateCommitment reconstructs each sub-protocol's commitment from its
// slice of response and the shared challenge.
func (a *And) SimulateCommitment(response []group.Scalar, challenge group.Scalar) ([]group.Element, error) {
	perResponse, err := a.splitScalars(response)
	if err != nil {
		return nil, err
	}
	commitment := make([]group.Element, 0, a.NumConstraints())
	for i, p := range a.Protocols {
		c, err := p.SimulateCommitment(perResponse[i], challenge)
		if err != nil {
			return nil, err
		}
		commitment = append(commitment, c...)
	}
	return commitment, nil
}

func (a *And) SerializeCommitment(commitment []group.Element) []byte {
	perCommit, err := a.splitElements(commitment)
	if err != nil {
		return nil
	}
	out := make([]byte, 0, a.CommitmentByteLength())
	for i, p := range a.Protocols {
		out = append(out, p.SerializeCommitment(perCommit[i])...)
	}
	return out
}

func (a *And) SerializeResponse(response []group.Scalar) []byte {
	perResponse, err := a.splitScalars(response)
	if err != nil {
		return nil
	}
	out := make([]byte, 0, a.ResponseByteLength())
	for i, p := range a.Protocols {
		out = append(out, p.SerializeResponse(perResponse[i])...)
	}
	return out
}

func (a *And) DeserializeCommitment(data []byte) ([]group.Element, error) {
	commitment := make([]group.Element, 0, a.NumConstraints())
	offset := 0
	for _, p := range a.Protocols {
		n := p.CommitmentByteLength()
		if offset+n > len(data) {
			return nil, sigmaerr.New(sigmaerr.MalformedInput, "and: commitment data shorter than expected")
		}
		c, err := p.DeserializeCommitment(data[offset : offset+n])
		if err != nil {
			return nil, err
		}
		commitment = append(commitment, c...)
		offset += n
	}
	if offset != len(data) {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "and: trailing bytes after all sub-protocol commitments")
	}
	return commitment, nil
}

func (a *And) DeserializeResponse(data []byte) ([]group.Scalar, error) {
	response := make([]group.Scalar, 0, a.NumScalars())
	offset := 0
	for _, p := range a.Protocols {
		n := p.ResponseByteLength()
		if offset+n > len(data) {
			return nil, sigmaerr.New(sigmaerr.MalformedInput, "and: response data shorter than expected")
		}
		r, err := p.DeserializeResponse(data[offset : offset+n])
		if err != nil {
			return nil, err
		}
		response = append(response, r...)
		offset += n
	}
	if offset != len(data) {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "and: trailing bytes after all sub-protocol responses")
	}
	return response, nil
}

func (a *And) CommitmentByteLength() int {
	n := 0
	for _, p := range a.Protocols {
		n += p.CommitmentByteLength()
	}
	return n
}

func (a *And) ResponseByteLength() int {
	n := 0
	for _, p := range a.Protocols {
		n += p.ResponseByteLength()
	}
	return n
}

func (a *And) NumScalars() int {
	n := 0
	for _, p := range a.Protocols {
		n += p.NumScalars()
	}
	return n
}

func (a *And) NumConstraints() int {
	n := 0
	for _, p := range a.Protocols {
		n += p.NumConstraints()
	}
	return n
}

// InstanceLabel binds every sub-protocol's label into a single digest,
// prefixed by a composition tag so it cannot collide with an atomic
// Schnorr label or an Or's label.
func (a *And) InstanceLabel() []byte {
	h := sha256.New()
	h.Write([]byte("AND_PROOF"))
	for _, p := range a.Protocols {
		h.Write(p.InstanceLabel())
	}
	return h.Sum(nil)
}

func (a *And) ProtocolID() []byte { return andProtocolID }
