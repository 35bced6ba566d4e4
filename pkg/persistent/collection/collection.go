// Package collection defines the contracts of general-purpose sequential
// collections. Read-only capabilities and mutating capabilities are separate
// interfaces; a MutableList is a Sequence that can also be modified.
//
// Implementations that cannot support mutation may still satisfy MutableList
// by failing every mutating method.
package collection

import "iter"

// Iterator is an iterator over a collection. It can be used like this:
//
//	for it := c.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
type Iterator[E any] interface {
	// Elem returns the element at the current position, or the zero value if
	// the iterator is exhausted.
	Elem() E
	// HasElem returns whether the iterator is pointing to an element.
	HasElem() bool
	// Next moves the iterator to the next position. It returns an error if
	// the iterator is already exhausted.
	Next() error
	// Remove removes the current element from the underlying collection.
	Remove() error
}

// ListIterator is an Iterator that knows its position and can modify the
// underlying list at that position.
type ListIterator[E any] interface {
	Iterator[E]
	// Index returns the position of the current element.
	Index() int
	// Set replaces the current element.
	Set(E) error
	// Insert inserts an element before the current element.
	Insert(E) error
}

// Collection is a read-only group of elements.
type Collection[E any] interface {
	// Len returns the number of elements.
	Len() int
	// IsEmpty returns whether there are no elements.
	IsEmpty() bool
	// Contains returns whether some element is equal to v.
	Contains(v E) bool
	// ContainsAll returns whether every one of vs is contained.
	ContainsAll(vs ...E) bool
	// ToSlice returns the elements in a new slice.
	ToSlice() []E
	// Iterator returns an iterator over the elements.
	Iterator() Iterator[E]
	// All returns the elements as a sequence.
	All() iter.Seq[E]
}

// Sequence is a read-only, ordered Collection with positional access.
type Sequence[E any] interface {
	Collection[E]
	// Get returns the element at position i.
	Get(i int) (E, error)
	// IndexOf returns the position of the first element equal to v, or -1.
	IndexOf(v E) int
	// LastIndexOf returns the position of the last element equal to v, or -1.
	LastIndexOf(v E) int
	// SubList returns the elements from position from up to but not including
	// position to.
	SubList(from, to int) (Sequence[E], error)
}

// MutableList is a Sequence that also supports modification.
type MutableList[E any] interface {
	Sequence[E]
	// Add appends v.
	Add(v E) error
	// AddAt inserts v at position i.
	AddAt(i int, v E) error
	// AddAll appends all of vs.
	AddAll(vs ...E) error
	// AddAllAt inserts all of vs at position i.
	AddAllAt(i int, vs ...E) error
	// Remove removes the first element equal to v, and returns whether there
	// was one.
	Remove(v E) (bool, error)
	// RemoveAt removes the element at position i and returns it.
	RemoveAt(i int) (E, error)
	// RemoveAll removes every element equal to one of vs.
	RemoveAll(vs ...E) error
	// RetainAll removes every element not equal to any of vs.
	RetainAll(vs ...E) error
	// Set replaces the element at position i and returns the old element.
	Set(i int, v E) (E, error)
	// Clear removes all elements.
	Clear() error
	// ListIterator returns an iterator starting at position i.
	ListIterator(i int) (ListIterator[E], error)
}
