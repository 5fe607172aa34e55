package types

import (
	"github.com/basalt-lang/basalt/frontend/ir"
	"github.com/basalt-lang/basalt/frontend/typerr"
	"github.com/basalt-lang/basalt/internal/log"
	"github.com/hashicorp/go-set/v3"
	"iter"
	"log/slog"
)

// Registry is the table of named type constructors for one checking
// session. Create one per session rather than sharing ambient state, so
// independent sessions cannot cross-contaminate.
//
// The registry takes no locks: lookups vastly outnumber redefinitions, so
// a parallel checker must bring its own read-mostly locking discipline.
type Registry struct {
	byName map[typeName]*TypeConstructor
	// names in first-registration order, so scans are deterministic
	names []typeName

	logger *slog.Logger
}

// NewRegistry builds an empty registry. logger receives the non-fatal
// clobber advisories Replace emits; pass nil for the default logger.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Registry{
		byName: make(map[typeName]*TypeConstructor),
		logger: ir.TreeLogger(logger).With("section", "registry"),
	}
}

// NewTypeConstructor allocates a constructor record without installing
// it. Use it to build the replacement record passed to Replace; Register
// installs records directly.
func (r *Registry) NewTypeConstructor(name typeName, arity int) *TypeConstructor {
	if name == InvalidatedName {
		panic("types: " + InvalidatedName + " is reserved and cannot name a constructor")
	}
	return &TypeConstructor{
		name:    name,
		arity:   arity,
		ctorSet: set.New[string](0),
	}
}

// Register installs a fresh constructor under name, or returns the
// existing record when one is already present with the same arity.
// Registering a known name with a different arity fails with
// ArityConflict and leaves the registry unchanged, so re-registration is
// idempotent for consistent definitions and strict for inconsistent ones.
func (r *Registry) Register(name typeName, arity int) (*TypeConstructor, error) {
	if existing, ok := r.byName[name]; ok {
		if existing.arity != arity {
			return nil, typerr.New(typerr.NewArityConflict{
				Name:     name,
				Existing: existing.arity,
				Given:    arity,
			})
		}
		return existing, nil
	}
	record := r.NewTypeConstructor(name, arity)
	r.install(name, record)
	return record, nil
}

func (r *Registry) Lookup(name typeName) (*TypeConstructor, bool) {
	record, ok := r.byName[name]
	return record, ok
}

func (r *Registry) Get(name typeName) (*TypeConstructor, error) {
	record, ok := r.byName[name]
	if !ok {
		return nil, typerr.New(typerr.NewUnknownConstructor{Name: name})
	}
	return record, nil
}

// Replace unconditionally installs record under name. A different record
// already stored under name is flagged invalidated and a non-fatal
// advisory is emitted: redefinition is a supported workflow, not an
// error, and types still referencing the old record stay structurally
// valid while no longer matching the live definition.
func (r *Registry) Replace(name typeName, record *TypeConstructor) *TypeConstructor {
	existing, ok := r.byName[name]
	if ok && existing != record {
		existing.invalidated = true
		r.logger.Warn("redefinition of type constructor clobbers previous definition",
			"name", name,
			"arity", existing.arity,
		)
	}
	r.install(name, record)
	return record
}

func (r *Registry) install(name typeName, record *TypeConstructor) {
	if _, ok := r.byName[name]; !ok {
		r.names = append(r.names, name)
	}
	r.byName[name] = record
}

// OwnerOfValueConstructor scans for the first registered type constructor
// whose value-constructor list claims ctorName.
func (r *Registry) OwnerOfValueConstructor(ctorName string) (*TypeConstructor, bool) {
	for _, name := range r.names {
		if record := r.byName[name]; record.HasConstructor(ctorName) {
			return record, true
		}
	}
	return nil, false
}

// All iterates registered constructors in first-registration order
func (r *Registry) All() iter.Seq2[typeName, *TypeConstructor] {
	return func(yield func(typeName, *TypeConstructor) bool) {
		for _, name := range r.names {
			if !yield(name, r.byName[name]) {
				return
			}
		}
	}
}

// TypeNamer returns a namer that avoids every constructor name
// registered so far. Trees unparsed through it can be fed back to
// TypeFromTree without a variable being mistaken for a constructor.
func (r *Registry) TypeNamer() *TypeNamer {
	namer := NewTypeNamer()
	for name := range r.All() {
		namer.Avoid(name)
	}
	return namer
}
