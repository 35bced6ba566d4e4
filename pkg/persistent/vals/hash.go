package vals

import (
	"math/big"

	"src.cons.sh/pkg/persistent/hash"
)

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the hash code of the receiver.
	Hash() uint32
}

// Hash returns the 32-bit hash of a value. It is implemented for the builtin
// boolean, integer, floating-point and string types, *big.Int, *big.Rat, and
// types satisfying the Hasher interface. For other values, it returns 0 (which
// is OK in terms of correctness).
func Hash(v any) uint32 {
	switch v := v.(type) {
	case bool:
		return hash.Bool(v)
	case int:
		return hash.Int(int64(v))
	case int8:
		return hash.Int(int64(v))
	case int16:
		return hash.Int(int64(v))
	case int32:
		return hash.Int(int64(v))
	case int64:
		return hash.Int(v)
	case uint:
		return hash.UInt64(uint64(v))
	case uint8:
		return hash.UInt32(uint32(v))
	case uint16:
		return hash.UInt32(uint32(v))
	case uint32:
		return hash.UInt32(v)
	case uint64:
		return hash.UInt64(v)
	case uintptr:
		return hash.UIntPtr(v)
	case float32:
		return hash.Float64(float64(v))
	case float64:
		return hash.Float64(v)
	case string:
		return hash.String(v)
	case *big.Int:
		h := hash.DJBCombine(hash.DJBInit, uint32(v.Sign()))
		for _, word := range v.Bits() {
			h = hash.DJBCombine(h, hash.UIntPtr(uintptr(word)))
		}
		return h
	case *big.Rat:
		return hash.DJB(Hash(v.Num()), Hash(v.Denom()))
	case Hasher:
		return v.Hash()
	default:
		return 0
	}
}
