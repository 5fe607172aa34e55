package types

// Universe returns a registry pre-seeded with the builtin type
// constructors and the value constructors that claim them
func Universe() *Registry {
	registry := NewRegistry(nil)
	builtin := func(name typeName, arity int, ctors ...string) {
		record, err := registry.Register(name, arity)
		if err != nil {
			// builtins register exactly once into a fresh registry
			panic(err)
		}
		record.AddConstructors(ctors...)
	}
	builtin("Unit", 0, "Unit")
	builtin("Boolean", 0, "True", "False")
	builtin("Integer", 0)
	builtin("String", 0)
	builtin("Char", 0)
	builtin("List", 1, "Cons", "Nil")
	builtin("Optional", 1, "Some", "None")
	builtin("Result", 2, "Ok", "Err")
	return registry
}
