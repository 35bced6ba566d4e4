// Package pair implements an immutable two-element pair, and the equality and
// hashing rules shared by every value that can be viewed as a pair.
//
// A value is pair-like if it implements Viewer. Two pair-like values are equal
// when their first components are equal and their second components are
// equal, regardless of their concrete types; this is what makes a cons list
// equal to a chain of Pair values ending in the same empty list.
package pair

import (
	"fmt"

	"src.cons.sh/pkg/persistent/hash"
	"src.cons.sh/pkg/persistent/vals"
)

// Viewer is implemented by values that can be viewed as a pair.
type Viewer interface {
	// PairView returns the two components of the value.
	PairView() (first, second any)
}

// Pair is an immutable pair of two values. The zero value is a pair of two
// zero values.
type Pair[A, B any] struct {
	first  A
	second B
}

// New returns a new Pair.
func New[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{first, second}
}

// First returns the first component.
func (p Pair[A, B]) First() A { return p.first }

// Second returns the second component.
func (p Pair[A, B]) Second() B { return p.second }

// PairView implements Viewer.
func (p Pair[A, B]) PairView() (any, any) { return p.first, p.second }

// Equal implements vals.Equaler.
func (p Pair[A, B]) Equal(other any) bool { return Equal(p, other) }

// Hash implements vals.Hasher.
func (p Pair[A, B]) Hash() uint32 { return Hash(p) }

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v . %v)", p.first, p.second)
}

// Equal reports whether two values are equal under the pair rules: if both are
// pair-like, their first components must be equal and their second components
// must be equal; if neither is, vals.Equal decides; a pair-like value is never
// equal to a value that is not.
//
// Chains of pairs through the second component are walked in a loop, so
// comparing two long lists uses constant stack space.
func Equal(a, b any) bool {
	for {
		va, aok := a.(Viewer)
		vb, bok := b.(Viewer)
		if !aok || !bok {
			if aok != bok {
				return false
			}
			return vals.Equal(a, b)
		}
		fa, sa := va.PairView()
		fb, sb := vb.PairView()
		if !vals.Equal(fa, fb) {
			return false
		}
		a, b = sa, sb
	}
}

// Hash returns the hash of a value under the pair rules: the hash of a
// pair-like value is hash.DJB(Hash(first), Hash(second)), and that of any
// other value is vals.Hash.
//
// The recursion through the second component is unrolled: the hashes of the
// first components are buffered while walking the chain, and folded from the
// terminal value backwards.
func Hash(v any) uint32 {
	var firsts []uint32
	for {
		p, ok := v.(Viewer)
		if !ok {
			break
		}
		first, second := p.PairView()
		firsts = append(firsts, vals.Hash(first))
		v = second
	}
	h := vals.Hash(v)
	for i := len(firsts) - 1; i >= 0; i-- {
		h = hash.DJB(firsts[i], h)
	}
	return h
}
