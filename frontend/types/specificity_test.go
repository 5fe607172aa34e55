package types_test

import (
	"github.com/basalt-lang/basalt/frontend/types"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFreeVariableIsMostGeneral(t *testing.T) {
	u := newTestUniverse(t)
	a := u.fresher.NewVariable("a")

	for _, specific := range []types.Type{
		a,
		u.fresher.NewVariable("b"),
		u.intType(),
		u.listOf(u.intType()),
		types.MakeFunction([]types.Type{u.intType()}, u.boolType()),
	} {
		t.Run(specific.String(), func(t *testing.T) {
			assert.True(t, types.MoreOrEquallySpecific(a, specific))
		})
	}
}

func TestApplicationSpecificity(t *testing.T) {
	u := newTestUniverse(t)
	a := u.fresher.NewVariable("a")

	// Integer instantiates a, but a concrete argument cannot generalize back
	assert.True(t, types.MoreOrEquallySpecific(u.listOf(a), u.listOf(u.intType())))
	assert.False(t, types.MoreOrEquallySpecific(u.listOf(u.intType()), u.listOf(a)))

	// an unbound variable or a function on the specific side rejects
	assert.False(t, types.MoreOrEquallySpecific(u.listOf(u.intType()), u.fresher.NewVariable("b")))
	assert.False(t, types.MoreOrEquallySpecific(u.listOf(u.intType()),
		types.MakeFunction([]types.Type{u.intType()}, u.intType())))
}

func TestApplicationSpecificityIsByRecordIdentity(t *testing.T) {
	u := newTestUniverse(t)

	// the same name in a separate session is a different record
	other := types.NewRegistry(nil)
	otherList, err := other.Register("List", 1)
	assert.NoError(t, err)

	ours := u.listOf(u.intType())
	theirs := types.MakeApplication(otherList, []types.Type{u.intType()})

	// structurally alpha-equivalent, yet not comparable by specificity
	assert.True(t, types.TypeEqual(ours, theirs))
	assert.False(t, types.MoreOrEquallySpecific(ours, theirs))
	assert.False(t, types.MoreOrEquallySpecific(theirs, ours))
}

func TestSpecificityFollowsBoundVariables(t *testing.T) {
	u := newTestUniverse(t)
	a := u.fresher.NewVariable("a")

	bound := u.fresher.NewVariable("")
	bound.Bind(u.listOf(u.intType()))

	// the bound variable on either side resolves to its instance
	assert.True(t, types.MoreOrEquallySpecific(u.listOf(a), bound))
	assert.True(t, types.MoreOrEquallySpecific(bound, u.listOf(u.intType())))

	general := u.fresher.NewVariable("")
	general.Bind(u.listOf(a))
	assert.True(t, types.MoreOrEquallySpecific(general, u.listOf(u.boolType())))
}

func TestFunctionSpecificity(t *testing.T) {
	u := newTestUniverse(t)
	a, b := u.fresher.NewVariable("a"), u.fresher.NewVariable("b")

	general := types.MakeFunction([]types.Type{a}, b)
	concrete := types.MakeFunction([]types.Type{u.intType()}, u.boolType())

	assert.True(t, types.MoreOrEquallySpecific(general, concrete))
	assert.False(t, types.MoreOrEquallySpecific(concrete, general))

	// parameter lists compare in the same direction as results, so a
	// variable parameter on the specific side rejects just like a
	// variable result would
	varParam := types.MakeFunction([]types.Type{u.fresher.NewVariable("c")}, u.boolType())
	assert.False(t, types.MoreOrEquallySpecific(concrete, varParam))

	// parameter counts must agree
	twoParams := types.MakeFunction([]types.Type{a, b}, u.boolType())
	assert.False(t, types.MoreOrEquallySpecific(twoParams, concrete))

	// an application on the specific side rejects
	assert.False(t, types.MoreOrEquallySpecific(general, u.listOf(u.intType())))
}
