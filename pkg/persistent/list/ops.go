package list

import (
	"fmt"
	"iter"
	"slices"

	"src.cons.sh/pkg/persistent/vals"
)

// FromSeq returns a list with the values of seq, in the same order. The
// values are buffered in a slice first, since a list is built from the back.
func FromSeq[E any](seq iter.Seq[E]) List[E] {
	return FromSlice(slices.Collect(seq)...)
}

// ToSlice returns the values of l in a new slice. It returns nil if l is
// empty.
func ToSlice[E any](l List[E]) []E {
	n := l.Len()
	if n == 0 {
		return nil
	}
	return AppendTo(l, make([]E, 0, n))
}

// AppendTo appends the values of l to dst and returns the extended slice.
func AppendTo[E any](l List[E], dst []E) []E {
	for c, ok := l.(*cell[E]); ok; c, ok = c.tail.(*cell[E]) {
		dst = append(dst, c.head)
	}
	return dst
}

// CopyTo copies the values of l into dst, starting at dst[offset], and returns
// the number of values copied. If offset is out of range or dst does not have
// room for all of the values, it returns an error matching
// ErrInvalidArgument and leaves dst unchanged.
func CopyTo[E any](l List[E], dst []E, offset int) (int, error) {
	if offset < 0 || offset > len(dst) {
		return 0, invalidArgument(fmt.Sprintf("offset %d out of range [0, %d]", offset, len(dst)))
	}
	n := l.Len()
	if room := len(dst) - offset; room < n {
		return 0, invalidArgument(fmt.Sprintf("room for %d values, need %d", room, n))
	}
	i := offset
	for c, ok := l.(*cell[E]); ok; c, ok = c.tail.(*cell[E]) {
		dst[i] = c.head
		i++
	}
	return n, nil
}

// IndexOf returns the index of the first value in l equal to v, or -1.
func IndexOf[E any](l List[E], v E) int {
	i := 0
	for c, ok := l.(*cell[E]); ok; c, ok = c.tail.(*cell[E]) {
		if vals.Equal(c.head, v) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last value in l equal to v, or -1.
func LastIndexOf[E any](l List[E], v E) int {
	i, last := 0, -1
	for c, ok := l.(*cell[E]); ok; c, ok = c.tail.(*cell[E]) {
		if vals.Equal(c.head, v) {
			last = i
		}
		i++
	}
	return last
}

// Contains returns whether some value in l is equal to v.
func Contains[E any](l List[E], v E) bool {
	return IndexOf(l, v) != -1
}

// DoesNotContain returns whether no value in l is equal to v.
func DoesNotContain[E any](l List[E], v E) bool {
	return IndexOf(l, v) == -1
}

// ContainsAll returns whether every one of vs is equal to some value in l.
// The values of l are indexed by their hash, so this takes time linear in
// the combined length.
func ContainsAll[E any](l List[E], vs ...E) bool {
	if len(vs) == 0 {
		return true
	}
	buckets := make(map[uint32][]E)
	for c, ok := l.(*cell[E]); ok; c, ok = c.tail.(*cell[E]) {
		h := vals.Hash(c.head)
		buckets[h] = append(buckets[h], c.head)
	}
	for _, v := range vs {
		found := false
		for _, w := range buckets[vals.Hash(v)] {
			if vals.Equal(w, v) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Take returns a list of the first n values of l, or all of l if it has fewer
// than n values. The result never shares cells with l.
func Take[E any](l List[E], n int) List[E] {
	var buf []E
	for c, ok := l.(*cell[E]); ok && len(buf) < n; c, ok = c.tail.(*cell[E]) {
		buf = append(buf, c.head)
	}
	return FromSlice(buf...)
}

// Drop returns the list after the first n values of l, which is the empty list
// if l has no more than n values. The result is a tail of l; nothing is
// copied.
func Drop[E any](l List[E], n int) List[E] {
	for i := 0; i < n; i++ {
		c, ok := l.(*cell[E])
		if !ok {
			break
		}
		l = c.tail
	}
	return l
}

// Suffix returns the tail of l starting at index i. It is the same as Drop.
func Suffix[E any](l List[E], i int) List[E] {
	return Drop(l, i)
}

// Slice returns a list of the values of l from index from up to but not
// including index to. The result is shorter than to-from if l ends earlier.
// It returns an error matching ErrInvalidArgument if from is negative or
// larger than to.
func Slice[E any](l List[E], from, to int) (List[E], error) {
	if from < 0 {
		return nil, invalidArgument(fmt.Sprintf("negative start index %d", from))
	}
	if from > to {
		return nil, invalidArgument(fmt.Sprintf("start index %d > end index %d", from, to))
	}
	return Take(Drop(l, from), to-from), nil
}

// Reverse returns a list of the values of l in reverse order. The result is
// built from new cells.
func Reverse[E any](l List[E]) List[E] {
	var r List[E] = empty[E]{}
	for c, ok := l.(*cell[E]); ok; c, ok = c.tail.(*cell[E]) {
		r = &cell[E]{c.head, r}
	}
	return r
}
