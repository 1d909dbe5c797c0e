package relation

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/sigma-relation/nizk/group"
)

// Instance is a concrete linear map paired with its claimed image: the
// public statement "there exists w such that LinearMap(w) == Image".
type Instance struct {
	LinearMap *LinearMap
	Image     []group.Element
}

// Label returns a domain-separated SHA-256 digest over the instance's
// shape (scalar/element/constraint counts), its group element table, and
// its image. Two instances with the same label are treated as the same
// statement by the Fiat-Shamir transform.
func (inst *Instance) Label() []byte {
	h := sha256.New()

	var counts [12]byte
	binary.LittleEndian.PutUint32(counts[0:4], uint32(inst.LinearMap.NumScalars))
	binary.LittleEndian.PutUint32(counts[4:8], uint32(inst.LinearMap.NumElements))
	binary.LittleEndian.PutUint32(counts[8:12], uint32(inst.LinearMap.NumConstraints))
	h.Write(counts[:])

	g := inst.LinearMap.Group
	h.Write(g.SerializeElements(inst.LinearMap.Elements))
	h.Write(g.SerializeElements(inst.Image))

	return h.Sum(nil)
}
