package types

import (
	"github.com/basalt-lang/basalt/frontend/ir"
	"github.com/basalt-lang/basalt/util"
	"strconv"
)

// TypeNamer assigns stable display names to free variables at print
// time: a variable keeps the same name for the lifetime of the namer, so
// related types unparsed through one namer stay consistent with each
// other. Name hints are honored unless already taken. The function
// markers are taken from the start, so no variable can ever print as
// "fn" or "->".
type TypeNamer struct {
	names map[TypeVarID]string
	used  util.MSet[string]
	count int
}

func NewTypeNamer() *TypeNamer {
	namer := &TypeNamer{
		names: make(map[TypeVarID]string),
		used:  util.NewEmptySet[string](),
	}
	namer.Avoid(string(ir.FnMarker), string(ir.ArrowMarker))
	return namer
}

// Avoid marks names as taken without assigning them to any variable.
// A hint matching an avoided name falls back to a generated one.
func (n *TypeNamer) Avoid(names ...string) {
	n.used.Add(names...)
}

func (n *TypeNamer) NameOf(variable *TypeVariable) string {
	if name, ok := n.names[variable.id]; ok {
		return name
	}
	name := variable.nameHint
	if name == "" || n.used.Contains(name) {
		name = n.nextGenerated()
	}
	n.names[variable.id] = name
	n.used.Add(name)
	return name
}

// nextGenerated produces a, b, .., z, a1, b1, ..
func (n *TypeNamer) nextGenerated() string {
	for {
		letter := string(rune('a' + n.count%26))
		suffix := ""
		if round := n.count / 26; round > 0 {
			suffix = strconv.Itoa(round)
		}
		n.count++
		candidate := letter + suffix
		if !n.used.Contains(candidate) {
			return candidate
		}
	}
}

// Assignments lists the (id, name) pairs handed out so far
func (n *TypeNamer) Assignments() []util.Pair[TypeVarID, string] {
	pairs := make([]util.Pair[TypeVarID, string], 0, len(n.names))
	for id, name := range n.names {
		pairs = append(pairs, util.NewPair(id, name))
	}
	return pairs
}
