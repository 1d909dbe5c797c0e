// Package nizk applies the Fiat-Shamir transform to a sigma.Protocol,
// turning an interactive three-move proof into a single non-interactive
// proof string, per spec.md section 6.
package nizk

import (
	"io"

	"github.com/sigma-relation/nizk/codec"
	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/sigma"
	"github.com/sigma-relation/nizk/sigmaerr"
	"github.com/sigma-relation/nizk/sponge"
)

// SpongeFactory builds a fresh sponge seeded with iv. Ciphersuites pass
// one of sponge.NewShake128Sponge or sponge.NewKeccak256Sponge.
type SpongeFactory func(iv []byte) sponge.Sponge

// NIZK binds a sigma.Protocol to a Codec and a sponge construction,
// producing and checking non-interactive proofs for one fixed instance.
type NIZK struct {
	Protocol      sigma.Protocol
	Codec         codec.Codec
	SpongeFactory SpongeFactory
	SessionID     []byte
}

// New returns a NIZK instance bound to protocol, with the transcript
// seeded from sessionID and the protocol's own instance label.
func New(protocol sigma.Protocol, c codec.Codec, factory SpongeFactory, sessionID []byte) (*NIZK, error) {
	return &NIZK{Protocol: protocol, Codec: c, SpongeFactory: factory, SessionID: sessionID}, nil
}

func (n *NIZK) freshSponge() (sponge.Sponge, error) {
	iv, err := n.Codec.Init(n.SessionID, n.Protocol.InstanceLabel())
	if err != nil {
		return nil, err
	}
	return n.SpongeFactory(iv), nil
}

// Prove generates a non-interactive proof of witness knowledge:
// commitment || response, both in the protocol's own wire encoding.
func (n *NIZK) Prove(witness []group.Scalar, rng io.Reader) ([]byte, error) {
	s, err := n.freshSponge()
	if err != nil {
		return nil, err
	}

	state, commitment, err := n.Protocol.Commit(witness, rng)
	if err != nil {
		return nil, err
	}

	n.Codec.ProverMessage(s, commitment)
	challenge := n.Codec.VerifierChallenge(s)

	response, err := n.Protocol.Respond(state, challenge)
	if err != nil {
		return nil, err
	}

	proof := make([]byte, 0, n.Protocol.CommitmentByteLength()+n.Protocol.ResponseByteLength())
	proof = append(proof, n.Protocol.SerializeCommitment(commitment)...)
	proof = append(proof, n.Protocol.SerializeResponse(response)...)
	return proof, nil
}

// Verify checks a non-interactive proof produced by Prove against the
// bound instance.
func (n *NIZK) Verify(proof []byte) error {
	commitLen := n.Protocol.CommitmentByteLength()
	if len(proof) < commitLen {
		return sigmaerr.New(sigmaerr.MalformedInput, "nizk: proof shorter than the expected commitment length")
	}

	commitmentBytes := proof[:commitLen]
	responseBytes := proof[commitLen:]

	commitment, err := n.Protocol.DeserializeCommitment(commitmentBytes)
	if err != nil {
		return err
	}
	response, err := n.Protocol.DeserializeResponse(responseBytes)
	if err != nil {
		return err
	}

	s, err := n.freshSponge()
	if err != nil {
		return err
	}
	n.Codec.ProverMessage(s, commitment)
	challenge := n.Codec.VerifierChallenge(s)

	return n.Protocol.Verify(commitment, challenge, response)
}
