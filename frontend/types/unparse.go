package types

import (
	"github.com/basalt-lang/basalt/frontend/ir"
)

// Unparse renders a type back into the tree form the type parser
// understands. Bound variables render as their representative type; free
// variables render as display names drawn from a fresh TypeNamer. Use
// UnparseIn to name variables consistently across several types, and a
// namer from Registry.TypeNamer when the tree will be re-parsed, so
// variable names never collide with registered constructor names.
func Unparse(t Type) ir.Node {
	return UnparseIn(t, NewTypeNamer())
}

func UnparseIn(t Type, namer *TypeNamer) ir.Node {
	switch t := Prune(t).(type) {
	case *TypeVariable:
		return ir.Sym(namer.NameOf(t))
	case *TypeApplication:
		head := ir.Sym(t.ctor.EffectiveName())
		if len(t.args) == 0 {
			return head
		}
		seq := make(ir.Seq, 0, len(t.args)+1)
		seq = append(seq, head)
		for _, arg := range t.args {
			seq = append(seq, UnparseIn(arg, namer))
		}
		return seq
	case *FunctionType:
		// fixed shape (fn <params..> -> <result>)
		seq := make(ir.Seq, 0, len(t.params)+3)
		seq = append(seq, ir.FnMarker)
		for _, param := range t.params {
			seq = append(seq, UnparseIn(param, namer))
		}
		seq = append(seq, ir.ArrowMarker, UnparseIn(t.ret, namer))
		return seq
	default:
		panic("types: unparse of unknown type shape")
	}
}
