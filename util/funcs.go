package util

import (
	"fmt"
	"iter"
	"strings"
)

// JoinString renders every element via fmt.Stringer and joins the results with sep
func JoinString[A fmt.Stringer](elems []A, sep string) string {
	strs := make([]string, len(elems))
	for i, elem := range elems {
		strs[i] = elem.String()
	}
	return strings.Join(strs, sep)
}

func ConcatIter[A any](iters ...iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, thisIter := range iters {
			for v := range thisIter {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func SingleIter[A any](elem A) iter.Seq[A] {
	return func(yield func(A) bool) {
		yield(elem)
	}
}
