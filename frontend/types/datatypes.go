// Package types implements the representation of basalt types and the
// comparison primitives the inference engine is built from: pruning of
// bound variables, alpha-equivalence, and the specificity partial order.
package types

import (
	"fmt"
	"github.com/basalt-lang/basalt/util"
	"github.com/hashicorp/go-set/v3"
	"hash/fnv"
	"iter"
	"slices"
	"strconv"
)

type typeName = string

// InvalidatedName is what an invalidated constructor displays and compares
// as. It is reserved: the registry refuses to create a constructor with
// this name, so a stale constructor can never match a live one.
const InvalidatedName typeName = "<invalidated>"

// TypeConstructor is a named, fixed-arity symbol that produces a concrete
// type when applied to argument types. Records are created by a Registry,
// which is also the only writer of the invalidated flag; everything else
// treats them as read-only apart from the value-constructor list.
type TypeConstructor struct {
	name        typeName
	arity       int
	invalidated bool

	// value constructors claiming this type, in declaration order
	ctors   []string
	ctorSet *set.Set[string]
}

func (c *TypeConstructor) Name() typeName    { return c.name }
func (c *TypeConstructor) Arity() int        { return c.arity }
func (c *TypeConstructor) Invalidated() bool { return c.invalidated }

// EffectiveName is the name comparison and printing act on: the declared
// name while the record is live, InvalidatedName once it is superseded.
// Two invalidated records share the sentinel and therefore compare equal
// to each other, never to a live record.
func (c *TypeConstructor) EffectiveName() typeName {
	if c.invalidated {
		return InvalidatedName
	}
	return c.name
}

// AddConstructors records names of value constructors that build values
// of this type. The list is populated after registration, once the data
// definition introducing the constructors has been processed.
func (c *TypeConstructor) AddConstructors(names ...string) {
	c.ctors = append(c.ctors, names...)
	c.ctorSet.InsertSlice(names)
}

func (c *TypeConstructor) Constructors() []string { return slices.Clone(c.ctors) }

func (c *TypeConstructor) HasConstructor(name string) bool {
	return c.ctorSet.Contains(name)
}

func (c *TypeConstructor) String() string {
	return c.EffectiveName()
}

// Type is the closed set of type shapes. Nodes are shared and immutable
// except for the instance link of a TypeVariable; nothing in this package
// deep-copies types.
type Type interface {
	fmt.Stringer
	Hash() uint64
	children() iter.Seq[Type]
}

var (
	_ Type = (*TypeVariable)(nil)
	_ Type = (*TypeApplication)(nil)
	_ Type = (*FunctionType)(nil)
)

var emptySeqType iter.Seq[Type] = func(_ func(Type) bool) {}

type TypeVarID = uint64

// TypeVariable is a placeholder for an as-yet-undetermined type.
// Two TypeVariable records are the same variable iff their ids are equal;
// construct them through a Fresher so ids stay unique.
type TypeVariable struct {
	id TypeVarID
	// instance is the unification binding: nil means the variable is free.
	// It is written by the unification algorithm that owns this core, and
	// the chain it forms must stay acyclic.
	instance Type
	// nameHint may be "" when not set
	nameHint string
}

// MakeVariable builds a variable with an explicit id. Callers that do not
// manage ids themselves should use Fresher.NewVariable instead.
func MakeVariable(id TypeVarID) *TypeVariable {
	return &TypeVariable{id: id}
}

func (t *TypeVariable) Id() TypeVarID { return t.id }

func (t *TypeVariable) Instance() (Type, bool) {
	return t.instance, t.instance != nil
}

// Bind sets the instance link so this variable stands for instance.
// Binding to nil frees the variable again.
func (t *TypeVariable) Bind(instance Type) { t.instance = instance }

func (t *TypeVariable) NameHint() string        { return t.nameHint }
func (t *TypeVariable) SetNameHint(name string) { t.nameHint = name }

func (t *TypeVariable) String() string {
	name := t.nameHint
	if name == "" {
		name = "α"
	}
	return name + strconv.FormatUint(t.id, 10)
}

func (t *TypeVariable) Hash() uint64 {
	const prime1 uint64 = 31
	const prime2 uint64 = 7919
	return prime1 * prime2 * t.id
}

func (t *TypeVariable) children() iter.Seq[Type] {
	if t.instance == nil {
		return emptySeqType
	}
	return util.SingleIter(t.instance)
}

// TypeApplication applies a constructor to an ordered list of argument
// types. The constructor reference is never nil. The argument count is
// not validated against the constructor's declared arity here; callers
// are responsible for arity-correct application.
type TypeApplication struct {
	ctor *TypeConstructor
	args []Type
}

func MakeApplication(ctor *TypeConstructor, args []Type) *TypeApplication {
	return &TypeApplication{ctor: ctor, args: args}
}

func (t *TypeApplication) Constructor() *TypeConstructor { return t.ctor }
func (t *TypeApplication) Arguments() []Type             { return t.args }

func (t *TypeApplication) String() string {
	displayName := t.ctor.EffectiveName()
	if len(t.args) == 0 {
		return displayName
	}
	return fmt.Sprintf("%s[%s]", displayName, util.JoinString(t.args, ","))
}

func (t *TypeApplication) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("TypeApplication"))
	_, _ = h.Write([]byte(t.ctor.name))
	var hash uint64 = 14695981039346656037
	for _, arg := range t.args {
		hash = hash*31 + arg.Hash()
	}
	return h.Sum64() ^ hash
}

func (t *TypeApplication) children() iter.Seq[Type] {
	return slices.Values(t.args)
}

// FunctionType is the type of functions from an ordered parameter list to
// a single result. Multi-argument functions are represented directly,
// without a tuple encoding.
type FunctionType struct {
	params []Type
	ret    Type
}

func MakeFunction(params []Type, ret Type) *FunctionType {
	return &FunctionType{params: params, ret: ret}
}

func (t *FunctionType) Parameters() []Type { return t.params }
func (t *FunctionType) Result() Type       { return t.ret }

func (t *FunctionType) String() string {
	return fmt.Sprintf("(fn %s -> %s)", util.JoinString(t.params, ", "), t.ret.String())
}

func (t *FunctionType) Hash() uint64 {
	var hash uint64 = 2166136261
	for _, param := range t.params {
		hash = hash*16777619 ^ param.Hash()
	}
	hash = hash*16777619 ^ t.ret.Hash()
	return hash
}

func (t *FunctionType) children() iter.Seq[Type] {
	return util.ConcatIter(slices.Values(t.params), util.SingleIter(t.ret))
}

// ArityOf is the parameter count of a function type, and 0 for variables
// and applications.
func ArityOf(t Type) int {
	if fn, ok := t.(*FunctionType); ok {
		return len(fn.params)
	}
	return 0
}

func IsFunction(t Type) bool {
	_, ok := t.(*FunctionType)
	return ok
}
