package list

import (
	"iter"

	"src.cons.sh/pkg/persistent/collection"
)

// Adapt returns a view of l that satisfies collection.MutableList. The
// read-only methods work as usual; every mutating method returns an error
// matching ErrUnsupported and has no effect.
func Adapt[E any](l List[E]) collection.MutableList[E] {
	return readOnly[E]{l}
}

type readOnly[E any] struct {
	l List[E]
}

// List returns the underlying list.
func (r readOnly[E]) List() List[E] { return r.l }

func (r readOnly[E]) Len() int { return r.l.Len() }

func (r readOnly[E]) IsEmpty() bool { return r.l.IsEmpty() }

func (r readOnly[E]) Contains(v E) bool { return Contains(r.l, v) }

func (r readOnly[E]) ContainsAll(vs ...E) bool { return ContainsAll(r.l, vs...) }

func (r readOnly[E]) ToSlice() []E { return ToSlice(r.l) }

func (r readOnly[E]) Iterator() collection.Iterator[E] {
	return readOnlyIterator[E]{r.l.Iterator()}
}

func (r readOnly[E]) All() iter.Seq[E] { return r.l.All() }

func (r readOnly[E]) Get(i int) (E, error) { return r.l.Index(i) }

func (r readOnly[E]) IndexOf(v E) int { return IndexOf(r.l, v) }

func (r readOnly[E]) LastIndexOf(v E) int { return LastIndexOf(r.l, v) }

func (r readOnly[E]) SubList(from, to int) (collection.Sequence[E], error) {
	l, err := Slice(r.l, from, to)
	if err != nil {
		return nil, err
	}
	return readOnly[E]{l}, nil
}

// Equal reports whether other is an adapted list equal to the underlying
// list. An adapter is not equal to a bare list, which would not be equal to
// it in return.
func (r readOnly[E]) Equal(other any) bool {
	o, ok := other.(readOnly[E])
	return ok && r.l.Equal(o.l)
}

func (r readOnly[E]) Hash() uint32 { return r.l.Hash() }

func (r readOnly[E]) String() string { return r.l.String() }

func (readOnly[E]) Add(E) error { return unsupported("Add") }

func (readOnly[E]) AddAt(int, E) error { return unsupported("AddAt") }

func (readOnly[E]) AddAll(...E) error { return unsupported("AddAll") }

func (readOnly[E]) AddAllAt(int, ...E) error { return unsupported("AddAllAt") }

func (readOnly[E]) Remove(E) (bool, error) { return false, unsupported("Remove") }

func (readOnly[E]) RemoveAt(int) (E, error) {
	var zero E
	return zero, unsupported("RemoveAt")
}

func (readOnly[E]) RemoveAll(...E) error { return unsupported("RemoveAll") }

func (readOnly[E]) RetainAll(...E) error { return unsupported("RetainAll") }

func (readOnly[E]) Set(int, E) (E, error) {
	var zero E
	return zero, unsupported("Set")
}

func (readOnly[E]) Clear() error { return unsupported("Clear") }

func (readOnly[E]) ListIterator(int) (collection.ListIterator[E], error) {
	return nil, unsupported("ListIterator")
}

type readOnlyIterator[E any] struct {
	Iterator[E]
}

func (readOnlyIterator[E]) Remove() error { return unsupported("Iterator.Remove") }
