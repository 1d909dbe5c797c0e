package relation

import (
	"errors"
	"fmt"

	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/sigmaerr"
)

// LinearRelation is the mutable builder used to describe a statement
// before it is Finalized into an Instance. Scalar and element variables
// are allocated by position; elements must be assigned a value before
// Finalize succeeds.
type LinearRelation struct {
	Group group.Group

	scalarVars  int
	elementVars int
	elementVals map[int]group.Element

	equations []equation
	linearMap *LinearMap
}

type equation struct {
	lhsElementVar int
	scalarVars    []int
	elementVars   []int
}

// NewLinearRelation returns an empty builder over g.
func NewLinearRelation(g group.Group) *LinearRelation {
	return &LinearRelation{
		Group:       g,
		elementVals: make(map[int]group.Element),
		linearMap:   NewLinearMap(g),
	}
}

// AllocateScalars reserves count fresh scalar variable ids and returns
// them in allocation order.
func (r *LinearRelation) AllocateScalars(count int) []int {
	ids := make([]int, count)
	for i := range ids {
		ids[i] = r.scalarVars
		r.scalarVars++
	}
	r.linearMap.NumScalars = r.scalarVars
	return ids
}

// AllocateElements reserves count fresh element variable ids and returns
// them in allocation order. Allocated ids have no value until SetElements
// assigns one.
func (r *LinearRelation) AllocateElements(count int) []int {
	ids := make([]int, count)
	for i := range ids {
		ids[i] = r.elementVars
		r.elementVars++
	}
	return ids
}

// SetElements assigns concrete group element values to previously
// allocated element variable ids.
func (r *LinearRelation) SetElements(assignments map[int]group.Element) {
	for id, val := range assignments {
		r.elementVals[id] = val
	}
}

// AppendEquation records lhsVar = sum(scalar_i * element_i) over the
// pairs (scalarVars[i], elementVars[i]). It returns ShapeMismatch if the
// two lists differ in length.
func (r *LinearRelation) AppendEquation(lhsVar int, scalarVars, elementVars []int) error {
	if len(scalarVars) != len(elementVars) {
		return sigmaerr.New(sigmaerr.ShapeMismatch, "linear relation: scalar and element term lists differ in length")
	}
	r.equations = append(r.equations, equation{lhsElementVar: lhsVar, scalarVars: scalarVars, elementVars: elementVars})
	r.linearMap.AddConstraint(scalarVars, elementVars)
	return nil
}

// Finalize validates that every allocated element variable, referenced by
// an equation or not, has been assigned a value and that at least one
// equation was appended, populates the linear map's element table, and
// returns the resulting Instance.
func (r *LinearRelation) Finalize() (*Instance, error) {
	var errs []error

	for id := 0; id < r.elementVars; id++ {
		if _, ok := r.elementVals[id]; !ok {
			errs = append(errs, fmt.Errorf("relation: element variable %d was allocated but never assigned a value", id))
		}
	}
	if len(r.equations) == 0 {
		errs = append(errs, errors.New("relation: no equations appended"))
	}
	if len(errs) > 0 {
		return nil, sigmaerr.New(sigmaerr.ShapeMismatch, errors.Join(errs...).Error())
	}

	elements := make([]group.Element, r.elementVars)
	for id := 0; id < r.elementVars; id++ {
		elements[id] = r.elementVals[id]
	}
	r.linearMap.SetElements(elements)

	image := make([]group.Element, len(r.equations))
	for i, eq := range r.equations {
		image[i] = r.elementVals[eq.lhsElementVar]
	}

	return &Instance{LinearMap: r.linearMap, Image: image}, nil
}
