package util

// MSet is a shallow wrapper around a map.
// For hash-keyed elements see hset.HSet.
type MSet[A comparable] struct {
	underlying map[A]struct{}
}

func NewEmptySet[A comparable]() MSet[A] {
	return MSet[A]{
		underlying: make(map[A]struct{}),
	}
}

func (s MSet[A]) Add(elems ...A) {
	for _, elem := range elems {
		s.underlying[elem] = struct{}{}
	}
}

func (s MSet[A]) Contains(elem A) bool {
	_, ok := s.underlying[elem]
	return ok
}
