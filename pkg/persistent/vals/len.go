package vals

// Lener wraps the Len method.
type Lener interface {
	// Len computes the length of the receiver.
	Len() int
}

// Len returns the length of the value, or -1 if the value does not have a
// well-defined length.
func Len(v any) int {
	switch v := v.(type) {
	case string:
		return len(v)
	case Lener:
		return v.Len()
	}
	return -1
}
