// Package codec bridges group-element and scalar encodings to the duplex
// sponge's absorb/squeeze operations, per spec.md section 4.4. It plays
// the role frost/participant.go's concat-based domain separation plays for
// FROST: a small, named place where byte layout decisions live.
package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/sigmaerr"
	"github.com/sigma-relation/nizk/sponge"
)

// Codec governs how group elements enter a sponge as a prover message and
// how a scalar challenge is squeezed back out.
type Codec interface {
	// Init returns the byte prefix to be absorbed into a fresh sponge
	// for the given session id and instance label:
	// len(session_id):u32-BE || session_id ||
	// len(instance_label):u32-BE || instance_label.
	Init(sessionID, instanceLabel []byte) ([]byte, error)
	// ProverMessage serializes elements with the codec's group and
	// absorbs the result into s.
	ProverMessage(s sponge.Sponge, elements []group.Element)
	// VerifierChallenge squeezes a uniform scalar challenge out of s.
	VerifierChallenge(s sponge.Sponge) group.Scalar
}

// SchnorrCodec is the byte-oriented codec for single-Schnorr proofs
// described in spec.md section 4.4.
type SchnorrCodec struct {
	Group group.Group
}

// NewSchnorrCodec returns a SchnorrCodec bound to g.
func NewSchnorrCodec(g group.Group) *SchnorrCodec {
	return &SchnorrCodec{Group: g}
}

// Init implements Codec. It rejects session ids or instance labels whose
// length does not fit in a 32-bit length prefix.
func (c *SchnorrCodec) Init(sessionID, instanceLabel []byte) ([]byte, error) {
	if uint64(len(sessionID)) > math32Max || uint64(len(instanceLabel)) > math32Max {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "session id or instance label length overflows a 32-bit length prefix")
	}

	out := make([]byte, 0, 8+len(sessionID)+len(instanceLabel))
	out = binary.BigEndian.AppendUint32(out, uint32(len(sessionID)))
	out = append(out, sessionID...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(instanceLabel)))
	out = append(out, instanceLabel...)
	return out, nil
}

const math32Max = uint64(1)<<32 - 1

// ProverMessage implements Codec.
func (c *SchnorrCodec) ProverMessage(s sponge.Sponge, elements []group.Element) {
	s.Absorb(c.Group.SerializeElements(elements))
}

// VerifierChallenge implements Codec. It squeezes scalar_byte_length + 16
// uniform bytes (the 16-byte over-squeeze keeps statistical distance to
// uniform below 2^-128 after the modular reduction) and reduces the
// resulting big-endian integer modulo the scalar field's order.
func (c *SchnorrCodec) VerifierChallenge(s sponge.Sponge) group.Scalar {
	sf := c.Group.ScalarField()
	uniform := s.Squeeze(sf.ScalarByteLength() + 16)
	asInt := new(big.Int).SetBytes(uniform)
	return sf.NewScalar(asInt)
}
