// Package list implements persistent list.
//
// A List is either the empty list, or a cell holding an element (the head)
// and another List (the tail). Lists are never modified after construction,
// so any number of lists may share a tail, and all lists are safe for
// concurrent use.
//
// Every operation that walks a list does so in a loop; none of them recurse
// on the tail, so arbitrarily long lists are fine.
package list

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"gopkg.in/yaml.v3"
	"src.cons.sh/pkg/persistent/hash"
	"src.cons.sh/pkg/persistent/pair"
	"src.cons.sh/pkg/persistent/vals"
)

// List is a persistent list.
type List[E any] interface {
	json.Marshaler
	yaml.Marshaler
	fmt.Stringer
	vals.Equaler
	vals.Hasher
	// IsEmpty returns whether the list is the empty list. It takes constant
	// time.
	IsEmpty() bool
	// Len returns the number of values in the list. It takes linear time.
	Len() int
	// First returns the first value in the list, and whether there is one.
	First() (E, bool)
	// Rest returns the list after the first value. The rest of the empty list
	// is the empty list.
	Rest() List[E]
	// Cons returns a new list with an additional value in the front. The
	// receiver becomes the tail of the new list and is not copied.
	Cons(v E) List[E]
	// Index returns the i-th value of the list. It returns an error matching
	// ErrIndexNotFound if i is negative or not smaller than Len.
	Index(i int) (E, error)
	// Iterator returns an iterator over the list, starting from the first
	// value.
	Iterator() Iterator[E]
	// All returns the values of the list as a sequence. The sequence can be
	// ranged over any number of times.
	All() iter.Seq[E]
}

// Empty returns the empty list. Empty lists of all element types are equal to
// each other and to nothing else.
func Empty[E any]() List[E] { return empty[E]{} }

// Singleton returns a list with one value.
func Singleton[E any](v E) List[E] { return &cell[E]{v, empty[E]{}} }

// Cons returns a new list with head in front of tail. It returns an error
// matching ErrInvalidArgument if tail is nil, or is not a list built by this
// package; use Empty for the empty list.
func Cons[E any](head E, tail List[E]) (List[E], error) {
	switch t := tail.(type) {
	case nil:
		return nil, invalidArgument("tail is nil")
	case *cell[E]:
		if t == nil {
			return nil, invalidArgument("tail is a nil cell")
		}
	case empty[E]:
	default:
		return nil, invalidArgument(fmt.Sprintf("tail of unknown type %T", tail))
	}
	return &cell[E]{head, tail}, nil
}

// FromSlice returns a list with the given values, in the same order.
func FromSlice[E any](vs ...E) List[E] {
	var l List[E] = empty[E]{}
	for i := len(vs) - 1; i >= 0; i-- {
		l = &cell[E]{vs[i], l}
	}
	return l
}

// emptyList is implemented by empty lists of all element types.
type emptyList interface{ emptyList() }

type empty[E any] struct{}

func (empty[E]) emptyList() {}

func (empty[E]) IsEmpty() bool { return true }

func (empty[E]) Len() int { return 0 }

func (empty[E]) First() (E, bool) {
	var zero E
	return zero, false
}

func (e empty[E]) Rest() List[E] { return e }

func (e empty[E]) Cons(v E) List[E] { return &cell[E]{v, e} }

func (empty[E]) Index(i int) (E, error) {
	var zero E
	return zero, indexError{i}
}

func (e empty[E]) Iterator() Iterator[E] { return &iterator[E]{e} }

func (e empty[E]) All() iter.Seq[E] { return all[E](e) }

func (empty[E]) Equal(other any) bool {
	_, ok := other.(emptyList)
	return ok
}

func (empty[E]) Hash() uint32 { return hash.DJBInit }

func (empty[E]) String() string { return "()" }

func (e empty[E]) MarshalJSON() ([]byte, error) { return marshalJSON[E](e) }

func (e empty[E]) MarshalYAML() (any, error) { return marshalYAML[E](e) }

type cell[E any] struct {
	head E
	tail List[E]
}

func (*cell[E]) IsEmpty() bool { return false }

func (c *cell[E]) Len() int {
	n := 1
	for next, ok := c.tail.(*cell[E]); ok; next, ok = next.tail.(*cell[E]) {
		n++
	}
	return n
}

func (c *cell[E]) First() (E, bool) { return c.head, true }

func (c *cell[E]) Rest() List[E] { return c.tail }

func (c *cell[E]) Cons(v E) List[E] { return &cell[E]{v, c} }

func (c *cell[E]) Index(i int) (E, error) {
	if i < 0 {
		var zero E
		return zero, indexError{i}
	}
	current := c
	for j := 0; j < i; j++ {
		next, ok := current.tail.(*cell[E])
		if !ok {
			var zero E
			return zero, indexError{i}
		}
		current = next
	}
	return current.head, nil
}

func (c *cell[E]) Iterator() Iterator[E] { return &iterator[E]{c} }

func (c *cell[E]) All() iter.Seq[E] { return all[E](c) }

// PairView implements pair.Viewer; a cell is the pair of its head and tail.
func (c *cell[E]) PairView() (any, any) { return c.head, c.tail }

// Equal implements vals.Equaler. A cell is equal to any pair-like value whose
// first component equals the head and whose second component equals the tail.
func (c *cell[E]) Equal(other any) bool {
	p, ok := other.(pair.Viewer)
	if !ok {
		return false
	}
	if o, ok := p.(*cell[E]); ok {
		return equalCells(c, o)
	}
	return pair.Equal(c, p)
}

// equalCells is the same comparison as pair.Equal, specialized to two lists
// of the same element type.
func equalCells[E any](a, b *cell[E]) bool {
	for {
		if !vals.Equal(a.head, b.head) {
			return false
		}
		an, aok := a.tail.(*cell[E])
		bn, bok := b.tail.(*cell[E])
		if !aok || !bok {
			return aok == bok
		}
		a, b = an, bn
	}
}

// Hash implements vals.Hasher, combining the hashes of the head and the tail
// as pair.Hash does.
func (c *cell[E]) Hash() uint32 { return pair.Hash(c) }

func (c *cell[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	fmt.Fprint(&sb, c.head)
	for next, ok := c.tail.(*cell[E]); ok; next, ok = next.tail.(*cell[E]) {
		sb.WriteByte(' ')
		fmt.Fprint(&sb, next.head)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (c *cell[E]) MarshalJSON() ([]byte, error) { return marshalJSON[E](c) }

func (c *cell[E]) MarshalYAML() (any, error) { return marshalYAML[E](c) }

func all[E any](l List[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for c, ok := l.(*cell[E]); ok; c, ok = c.tail.(*cell[E]) {
			if !yield(c.head) {
				return
			}
		}
	}
}
