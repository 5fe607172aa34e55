package types

// MoreOrEquallySpecific reports whether specific can be produced by
// instantiating the free variables of general: free variables are the
// most general element of the order and are compatible with anything.
// It binds no variables and is read-only; use it to rank candidates, not
// as a unifiability test.
//
// Parameter lists of function types are compared in the same direction
// as results, not the contravariant direction.
func MoreOrEquallySpecific(general, specific Type) bool {
	switch general := Prune(general).(type) {
	case *TypeVariable:
		// unbound after pruning, so it instantiates to anything
		return true
	case *TypeApplication:
		specific, ok := Prune(specific).(*TypeApplication)
		if !ok {
			return false
		}
		// same constructor record, not merely the same name
		if specific.ctor != general.ctor {
			return false
		}
		return pairwiseMoreOrEquallySpecific(general.args, specific.args)
	case *FunctionType:
		specific, ok := Prune(specific).(*FunctionType)
		if !ok {
			return false
		}
		if !MoreOrEquallySpecific(general.ret, specific.ret) {
			return false
		}
		return pairwiseMoreOrEquallySpecific(general.params, specific.params)
	default:
		return false
	}
}

func pairwiseMoreOrEquallySpecific(general, specific []Type) bool {
	if len(general) != len(specific) {
		return false
	}
	for i := range general {
		if !MoreOrEquallySpecific(general[i], specific[i]) {
			return false
		}
	}
	return true
}
