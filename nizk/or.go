package nizk

import (
	"io"

	"github.com/sigma-relation/nizk/codec"
	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/sigma"
	"github.com/sigma-relation/nizk/sigmaerr"
	"github.com/sigma-relation/nizk/sponge"
)

// OrNIZK is the Fiat-Shamir transform specialized to sigma.Or. It is
// separate from NIZK because Or does not fit sigma.Protocol's uniform
// single-witness shape: proving requires naming which branch's witness
// is held, a parameter the shared Protocol interface has no room for.
type OrNIZK struct {
	Protocol      *sigma.Or
	Group         group.Group
	Codec         codec.Codec
	SpongeFactory SpongeFactory
	SessionID     []byte
}

// NewOr returns an OrNIZK bound to protocol over g, whose branches all
// share g's scalar field.
func NewOr(protocol *sigma.Or, g group.Group, c codec.Codec, factory SpongeFactory, sessionID []byte) *OrNIZK {
	return &OrNIZK{Protocol: protocol, Group: g, Codec: c, SpongeFactory: factory, SessionID: sessionID}
}

func (n *OrNIZK) freshSponge() (sponge.Sponge, error) {
	iv, err := n.Codec.Init(n.SessionID, n.Protocol.InstanceLabel())
	if err != nil {
		return nil, err
	}
	return n.SpongeFactory(iv), nil
}

// Prove generates a non-interactive OR proof demonstrating knowledge of
// a witness for branch witnessIdx, without revealing which branch.
func (n *OrNIZK) Prove(witnessIdx int, witness []group.Scalar, rng io.Reader) ([]byte, error) {
	s, err := n.freshSponge()
	if err != nil {
		return nil, err
	}

	state, commitment, err := n.Protocol.CommitOr(witnessIdx, witness, n.Group.ScalarField(), rng)
	if err != nil {
		return nil, err
	}

	n.Codec.ProverMessage(s, commitment)
	challenge := n.Codec.VerifierChallenge(s)

	resp, err := n.Protocol.RespondOr(state, challenge)
	if err != nil {
		return nil, err
	}

	proof := make([]byte, 0)
	proof = append(proof, n.Group.SerializeElements(commitment)...)
	proof = append(proof, n.Protocol.SerializeResponseFor(resp, n.Group.ScalarField())...)
	return proof, nil
}

// Verify checks a non-interactive OR proof produced by Prove.
func (n *OrNIZK) Verify(proof []byte) error {
	commitLen := n.Group.ElementByteLength() * len(n.Protocol.Protocols)
	if len(proof) < commitLen {
		return sigmaerr.New(sigmaerr.MalformedInput, "or nizk: proof shorter than the expected commitment length")
	}

	commitmentBytes := proof[:commitLen]
	responseBytes := proof[commitLen:]

	commitment, err := n.Group.DeserializeElements(commitmentBytes)
	if err != nil {
		return err
	}
	resp, err := n.Protocol.DeserializeResponseFor(responseBytes, n.Group.ScalarField())
	if err != nil {
		return err
	}

	s, err := n.freshSponge()
	if err != nil {
		return err
	}
	n.Codec.ProverMessage(s, commitment)
	challenge := n.Codec.VerifierChallenge(s)

	return n.Protocol.VerifyOr(commitment, challenge, resp)
}
