// Package ir holds the surface tree form of types: the structured,
// re-parseable representation the unparser emits and the parser consumes.
package ir

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Node is either a bare symbol or an ordered sequence of nodes.
// The textual rendering is the concrete syntax the type parser accepts,
// so a rendered node always reads back as the same tree.
type Node interface {
	fmt.Stringer
	Hash() uint64
}

var (
	_ Node = Sym("")
	_ Node = Seq(nil)
)

// Sym is a symbol leaf: a constructor name, a type variable name, or one
// of the reserved markers below.
type Sym string

// Reserved markers for function trees. A function of parameters p1..pn
// returning r is the sequence (fn p1 .. pn -> r): FnMarker brackets the
// parameter list from the left and ArrowMarker introduces the result.
const (
	FnMarker    = Sym("fn")
	ArrowMarker = Sym("->")
)

func (s Sym) String() string { return string(s) }

func (s Sym) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Sym"))
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Seq is an ordered sequence of nodes, rendered in parentheses.
type Seq []Node

func (s Seq) String() string {
	sb := strings.Builder{}
	sb.WriteString("(")
	for i, node := range s {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(node.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (s Seq) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Seq"))
	arr := make([]byte, 0)
	for _, node := range s {
		arr = binary.LittleEndian.AppendUint64(arr, node.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}
