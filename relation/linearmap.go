// Package relation builds and evaluates the linear maps that a Sigma
// protocol proves knowledge of a preimage for: statements of the shape
// phi(w) = x, where phi is a sparse linear combination of group elements
// weighted by scalar witnesses.
package relation

import (
	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/sigmaerr"
)

// LinearCombination is one row of a LinearMap: the weighted sum of
// group_elements[element_idx[i]] * scalars[scalar_idx[i]] over i.
type LinearCombination struct {
	ScalarIdx  []int
	ElementIdx []int
}

// LinearMap is a sparse matrix of group elements that, applied to a
// vector of scalars, produces the vector of group elements used as a
// Sigma protocol's commitment or verification check.
type LinearMap struct {
	Group          group.Group
	Elements       []group.Element
	Constraints    []LinearCombination
	NumScalars     int
	NumElements    int
	NumConstraints int
}

// NewLinearMap returns an empty LinearMap over g.
func NewLinearMap(g group.Group) *LinearMap {
	return &LinearMap{Group: g}
}

// AddConstraint appends a row to the map.
func (m *LinearMap) AddConstraint(scalarIdx, elementIdx []int) {
	m.Constraints = append(m.Constraints, LinearCombination{ScalarIdx: scalarIdx, ElementIdx: elementIdx})
	m.NumConstraints++
}

// SetElements replaces the map's group element table.
func (m *LinearMap) SetElements(elements []group.Element) {
	m.Elements = elements
	m.NumElements = len(elements)
}

// Evaluate applies the map to scalars, returning one group element per
// constraint row.
func (m *LinearMap) Evaluate(scalars []group.Scalar) ([]group.Element, error) {
	if len(scalars) != m.NumScalars {
		return nil, sigmaerr.New(sigmaerr.ShapeMismatch, "linear map: scalar vector length does not match num_scalars")
	}

	out := make([]group.Element, 0, len(m.Constraints))
	for _, lc := range m.Constraints {
		acc := m.Group.Identity()
		for i := range lc.ScalarIdx {
			scalarIdx := lc.ScalarIdx[i]
			elementIdx := lc.ElementIdx[i]
			if scalarIdx < 0 || scalarIdx >= len(scalars) {
				return nil, sigmaerr.New(sigmaerr.ShapeMismatch, "linear map: scalar index out of range")
			}
			if elementIdx < 0 || elementIdx >= len(m.Elements) {
				return nil, sigmaerr.New(sigmaerr.ShapeMismatch, "linear map: element index out of range")
			}
			term := m.Elements[elementIdx].ScalarMul(scalars[scalarIdx])
			acc = acc.Add(term)
		}
		out = append(out, acc)
	}
	return out, nil
}
