// Package sigma implements the three-move Sigma protocol engine: Schnorr
// proofs of knowledge for a linear relation, and their AND/OR
// compositions, per spec.md section 5.
package sigma

import (
	"io"

	"github.com/sigma-relation/nizk/group"
)

// Protocol is the capability interface every Sigma protocol (atomic or
// composed) implements: commit, respond, verify, plus the simulator
// operations composition needs for honest-verifier zero-knowledge, and
// the wire codecs for each message.
type Protocol interface {
	// Commit samples prover randomness and returns an opaque prover
	// state together with the first-move commitment.
	Commit(witness []group.Scalar, rng io.Reader) (ProverState, []group.Element, error)
	// Respond computes the third-move response given the state from
	// Commit and the verifier's challenge.
	Respond(state ProverState, challenge group.Scalar) ([]group.Scalar, error)
	// Verify checks a (commitment, challenge, response) triple against
	// the protocol's instance.
	Verify(commitment []group.Element, challenge group.Scalar, response []group.Scalar) error

	// SimulateResponse draws a response distributed as a real response
	// would be, without needing a witness.
	SimulateResponse(rng io.Reader) ([]group.Scalar, error)
	// SimulateCommitment reconstructs the unique commitment consistent
	// with a given (response, challenge) pair. Used by OR composition to
	// fabricate honest-looking transcripts for non-witness branches.
	SimulateCommitment(response []group.Scalar, challenge group.Scalar) ([]group.Element, error)

	SerializeCommitment(commitment []group.Element) []byte
	SerializeResponse(response []group.Scalar) []byte
	DeserializeCommitment(data []byte) ([]group.Element, error)
	DeserializeResponse(data []byte) ([]group.Scalar, error)

	CommitmentByteLength() int
	ResponseByteLength() int
	// NumScalars and NumConstraints report the witness and commitment
	// vector lengths this protocol expects, letting composite protocols
	// split a flat vector into per-sub-protocol slices.
	NumScalars() int
	NumConstraints() int

	// InstanceLabel identifies the statement being proved, for binding
	// into the Fiat-Shamir transcript.
	InstanceLabel() []byte
	// ProtocolID is a fixed 64-byte identifier distinguishing protocol
	// families in the transcript.
	ProtocolID() []byte
}

// ProverState is the opaque first-move state a Protocol hands back from
// Commit and expects to receive again in Respond.
type ProverState interface{}

func padProtocolID(name string) []byte {
	id := make([]byte, 64)
	copy(id, name)
	return id
}
