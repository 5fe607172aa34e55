package types

import (
	"github.com/basalt-lang/basalt/util/hset"
	"github.com/benbjohnson/immutable"
)

// typeVarHasher keys variables by id, the sole identity of a variable
type typeVarHasher struct{}

var _ immutable.Hasher[*TypeVariable] = typeVarHasher{}

func (typeVarHasher) Hash(v *TypeVariable) uint32 {
	return uint32(v.id) ^ uint32(v.id>>32)
}

func (typeVarHasher) Equal(a, b *TypeVariable) bool {
	return a.id == b.id
}

// FreeVariables collects the distinct unbound variables of t in first
// occurrence order, looking through bound variables' instances.
func FreeVariables(t Type) []*TypeVariable {
	seen := hset.New[*TypeVariable](typeVarHasher{})
	var found []*TypeVariable
	var walk func(t Type)
	walk = func(t Type) {
		if variable, isVar := Prune(t).(*TypeVariable); isVar {
			if !seen.Contains(variable) {
				seen.Add(variable)
				found = append(found, variable)
			}
			return
		}
		for child := range Prune(t).children() {
			walk(child)
		}
	}
	walk(t)
	return found
}
