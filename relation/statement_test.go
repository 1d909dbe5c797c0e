package relation

import (
	"math/big"
	"testing"

	"github.com/sigma-relation/nizk/group"
	"github.com/sigma-relation/nizk/internal/testutils"
)

func buildDiscreteLogInstance(t *testing.T) (*Instance, group.Scalar) {
	g := group.P256()
	sf := g.ScalarField()
	gen := g.Generator()

	r := NewLinearRelation(g)
	scalarVars := r.AllocateScalars(1)
	elementVars := r.AllocateElements(2) // [0]=G, [1]=X

	x := sf.NewScalar(big.NewInt(123))
	image := gen.ScalarMul(x)
	r.SetElements(map[int]group.Element{elementVars[0]: gen, elementVars[1]: image})

	if err := r.AppendEquation(elementVars[1], []int{scalarVars[0]}, []int{elementVars[0]}); err != nil {
		t.Fatalf("append equation: %v", err)
	}

	inst, err := r.Finalize()
	testutils.AssertNoError(t, "finalize", err)
	return inst, x
}

func TestLinearRelationFinalizeBuildsCorrectInstance(t *testing.T) {
	inst, x := buildDiscreteLogInstance(t)
	testutils.AssertIntsEqual(t, "num scalars", 1, inst.LinearMap.NumScalars)
	testutils.AssertIntsEqual(t, "num constraints", 1, inst.LinearMap.NumConstraints)

	evaluated, err := inst.LinearMap.Evaluate([]group.Scalar{x})
	testutils.AssertNoError(t, "evaluate", err)
	testutils.AssertBoolsEqual(t, "evaluated witness matches image", true, evaluated[0].Equal(inst.Image[0]))
}

func TestLinearRelationFinalizeRejectsUnassignedElement(t *testing.T) {
	g := group.P256()
	r := NewLinearRelation(g)
	scalarVars := r.AllocateScalars(1)
	elementVars := r.AllocateElements(2)

	// Only assign one of the two allocated element variables.
	r.SetElements(map[int]group.Element{elementVars[0]: g.Generator()})
	if err := r.AppendEquation(elementVars[1], []int{scalarVars[0]}, []int{elementVars[0]}); err != nil {
		t.Fatalf("append equation: %v", err)
	}

	_, err := r.Finalize()
	if err == nil {
		t.Fatalf("expected Finalize to reject an unassigned element variable")
	}
}

func TestInstanceLabelStableAcrossRebuilds(t *testing.T) {
	inst1, _ := buildDiscreteLogInstance(t)
	inst2, _ := buildDiscreteLogInstance(t)
	testutils.AssertBytesEqual(t, inst1.Label(), inst2.Label())
}

func TestInstanceLabelChangesWithImage(t *testing.T) {
	g := group.P256()
	sf := g.ScalarField()
	gen := g.Generator()

	buildWithWitness := func(x int64) *Instance {
		r := NewLinearRelation(g)
		scalarVars := r.AllocateScalars(1)
		elementVars := r.AllocateElements(2)
		image := gen.ScalarMul(sf.NewScalar(big.NewInt(x)))
		r.SetElements(map[int]group.Element{elementVars[0]: gen, elementVars[1]: image})
		r.AppendEquation(elementVars[1], []int{scalarVars[0]}, []int{elementVars[0]})
		inst, err := r.Finalize()
		testutils.AssertNoError(t, "finalize", err)
		return inst
	}

	instA := buildWithWitness(7)
	instB := buildWithWitness(9)
	if string(instA.Label()) == string(instB.Label()) {
		t.Fatalf("expected different images to produce different instance labels")
	}
}
