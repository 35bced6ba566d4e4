// Package vals contains the equality and hashing rules for values stored in
// persistent containers.
package vals

import (
	"math/big"
	"reflect"
)

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value. Two equal values must have
	// the same hash code.
	Equal(other any) bool
}

// Equal returns whether two values are equal. It is implemented for the builtin
// types nil, bool, string, int, float64, *big.Int, *big.Rat, and types
// satisfying the Equaler interface. For other types, it uses reflect.DeepEqual
// to compare the two values.
//
// If x is an Equaler, x.Equal(y) decides; otherwise, if y is one, y.Equal(x)
// does, before any of the builtin cases are tried.
func Equal(x, y any) bool {
	if _, ok := x.(Equaler); !ok {
		if y, ok := y.(Equaler); ok {
			return y.Equal(x)
		}
	}
	switch x := x.(type) {
	case nil:
		return x == y
	case bool:
		return x == y
	case int:
		return x == y
	case float64:
		return x == y
	case string:
		return x == y
	case *big.Int:
		if y, ok := y.(*big.Int); ok {
			return x.Cmp(y) == 0
		}
		return false
	case *big.Rat:
		if y, ok := y.(*big.Rat); ok {
			return x.Cmp(y) == 0
		}
		return false
	case Equaler:
		return x.Equal(y)
	default:
		return reflect.DeepEqual(x, y)
	}
}
