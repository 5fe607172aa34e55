package types

// TypeEqual reports whether two types have the same pruned shape up to a
// consistent one-to-one renaming of the unbound variables in each
// (alpha-equivalence). The variable correspondence is built during a
// single joint descent and discarded afterwards; no judgment persists
// across calls.
func TypeEqual(t1, t2 Type) bool {
	correspondence := &varCorrespondence{
		pairs: make(map[TypeVarID]TypeVarID),
	}
	return correspondence.typesEqual(t1, t2)
}

// varCorrespondence witnesses a bijection between the variables of the
// two types, grown optimistically on first encounter. A single table
// holds both directions of every pair, so an id is recognized as paired
// no matter which side of the comparison it occurs on.
type varCorrespondence struct {
	pairs map[TypeVarID]TypeVarID
}

func (c *varCorrespondence) typesEqual(t1, t2 Type) bool {
	t1, t2 = Prune(t1), Prune(t2)
	switch t1 := t1.(type) {
	case *TypeVariable:
		t2, ok := t2.(*TypeVariable)
		if !ok {
			return false
		}
		return c.variablesCorrespond(t1, t2)
	case *TypeApplication:
		t2, ok := t2.(*TypeApplication)
		if !ok {
			return false
		}
		if t1.ctor.EffectiveName() != t2.ctor.EffectiveName() {
			return false
		}
		return c.pairwiseEqual(t1.args, t2.args)
	case *FunctionType:
		t2, ok := t2.(*FunctionType)
		if !ok {
			return false
		}
		if !c.typesEqual(t1.ret, t2.ret) {
			return false
		}
		return c.pairwiseEqual(t1.params, t2.params)
	default:
		return false
	}
}

func (c *varCorrespondence) variablesCorrespond(v1, v2 *TypeVariable) bool {
	paired1, known1 := c.pairs[v1.id]
	paired2, known2 := c.pairs[v2.id]
	switch {
	case !known1 && !known2:
		// first encounter of the pair is always accepted
		c.pairs[v1.id] = v2.id
		c.pairs[v2.id] = v1.id
		return true
	case known1 && known2:
		return paired1 == v2.id && paired2 == v1.id
	default:
		// one of the two is already paired with a different variable
		return false
	}
}

func (c *varCorrespondence) pairwiseEqual(ts1, ts2 []Type) bool {
	if len(ts1) != len(ts2) {
		return false
	}
	for i := range ts1 {
		if !c.typesEqual(ts1[i], ts2[i]) {
			return false
		}
	}
	return true
}
