package list

// Iterator is an iterator over list elements. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
type Iterator[E any] interface {
	// Elem returns the element at the current position, or the zero value if
	// the iterator is exhausted.
	Elem() E
	// HasElem returns whether the iterator is pointing to an element.
	HasElem() bool
	// Next moves the iterator to the next position. It returns
	// ErrNoMoreElements if the iterator is already exhausted, in which case it
	// stays where it is.
	Next() error
}

type iterator[E any] struct {
	current List[E]
}

func (it *iterator[E]) Elem() E {
	if c, ok := it.current.(*cell[E]); ok {
		return c.head
	}
	var zero E
	return zero
}

func (it *iterator[E]) HasElem() bool {
	return !it.current.IsEmpty()
}

func (it *iterator[E]) Next() error {
	c, ok := it.current.(*cell[E])
	if !ok {
		return ErrNoMoreElements
	}
	it.current = c.tail
	return nil
}
