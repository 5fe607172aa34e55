package types

// Fresher keeps track of new type variables so ids stay unique within one
// checking session
type Fresher struct {
	freshCount uint64
}

func NewFresher() *Fresher {
	return &Fresher{freshCount: 0}
}

func (f *Fresher) NewVariable(nameHint string) *TypeVariable {
	variable := &TypeVariable{
		id:       f.freshCount,
		nameHint: nameHint,
	}
	f.freshCount++
	return variable
}

// Instantiate returns a copy of t where every free variable is replaced
// by a fresh one, consistently: repeated occurrences of the same variable
// map to the same fresh variable. Bound variables are resolved through
// their instance first, so the copy shares no mutable state with t.
func (f *Fresher) Instantiate(t Type) Type {
	return f.instantiate(t, make(map[TypeVarID]*TypeVariable))
}

func (f *Fresher) instantiate(t Type, freshened map[TypeVarID]*TypeVariable) Type {
	switch t := Prune(t).(type) {
	case *TypeVariable:
		if fresh, ok := freshened[t.id]; ok {
			return fresh
		}
		fresh := f.NewVariable(t.nameHint)
		freshened[t.id] = fresh
		return fresh
	case *TypeApplication:
		args := make([]Type, len(t.args))
		for i, arg := range t.args {
			args[i] = f.instantiate(arg, freshened)
		}
		return MakeApplication(t.ctor, args)
	case *FunctionType:
		params := make([]Type, len(t.params))
		for i, param := range t.params {
			params[i] = f.instantiate(param, freshened)
		}
		return MakeFunction(params, f.instantiate(t.ret, freshened))
	default:
		return t
	}
}
