// Package hset implements a set of hashable elements, JVM style
package hset

import (
	"github.com/benbjohnson/immutable"
)

// HSet is a shallow wrapper around a map keyed by element hash.
// Use immutable.Set if you are not going to be modifying this
// as it is more copy efficient.
type HSet[A any] struct {
	hasher     immutable.Hasher[A]
	underlying map[uint32]A
}

func Empty[A any](hasher immutable.Hasher[A]) HSet[A] {
	return HSet[A]{
		hasher:     hasher,
		underlying: make(map[uint32]A),
	}
}

func New[A any](hasher immutable.Hasher[A], elems ...A) HSet[A] {
	n := Empty(hasher)
	for _, elem := range elems {
		n.Add(elem)
	}
	return n
}

func (s HSet[A]) Add(elems ...A) {
	for _, elem := range elems {
		s.underlying[s.hasher.Hash(elem)] = elem
	}
}

func (s HSet[A]) Contains(elem A) bool {
	_, ok := s.underlying[s.hasher.Hash(elem)]
	return ok
}
