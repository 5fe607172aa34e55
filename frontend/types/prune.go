package types

// Prune resolves a chain of bound type variables down to its current
// representative: a variable bound (directly or transitively) to a type
// resolves to that type, anything else is returned unchanged. Every
// traversal in this package prunes both operands before branching on
// their shape.
func Prune(t Type) Type {
	if variable, isVar := t.(*TypeVariable); isVar {
		if instance, bound := variable.Instance(); bound {
			return Prune(instance)
		}
	}
	return t
}
