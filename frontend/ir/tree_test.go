package ir_test

import (
	"github.com/basalt-lang/basalt/frontend/ir"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNodeString(t *testing.T) {
	assert.Equal(t, "List", ir.Sym("List").String())
	assert.Equal(t, "()", ir.Seq{}.String())
	assert.Equal(t, "(List Integer)", ir.Seq{ir.Sym("List"), ir.Sym("Integer")}.String())

	nested := ir.Seq{ir.FnMarker, ir.Seq{ir.Sym("List"), ir.Sym("a")}, ir.ArrowMarker, ir.Sym("a")}
	assert.Equal(t, "(fn (List a) -> a)", nested.String())
}

func TestNodeHash(t *testing.T) {
	assert.Equal(t, ir.Sym("List").Hash(), ir.Sym("List").Hash())
	assert.NotEqual(t, ir.Sym("List").Hash(), ir.Sym("Optional").Hash())

	// a leaf never hashes like the one-element sequence holding it
	assert.NotEqual(t, ir.Sym("List").Hash(), ir.Seq{ir.Sym("List")}.Hash())

	seq := ir.Seq{ir.Sym("List"), ir.Sym("Integer")}
	assert.Equal(t, seq.Hash(), ir.Seq{ir.Sym("List"), ir.Sym("Integer")}.Hash())
	assert.NotEqual(t, seq.Hash(), ir.Seq{ir.Sym("Integer"), ir.Sym("List")}.Hash())
}
