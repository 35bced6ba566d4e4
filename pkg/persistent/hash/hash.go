// Package hash contains hash combinators shared by the persistent data
// structures and the value helpers built on them.
package hash

import (
	"math"
	"unsafe"
)

// DJBInit is the initial accumulator of DJB hashes. It is also the hash of
// the empty list.
const DJBInit uint32 = 5381

// DJBCombine folds h into the accumulator acc.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines the given hashes in order, starting from DJBInit.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

func Bool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func UInt32(u uint32) uint32 {
	return u
}

func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

// Int hashes a signed integer of any width by its two's complement bits.
func Int(i int64) uint32 {
	return UInt64(uint64(i))
}

func Float64(f float64) uint32 {
	return UInt64(math.Float64bits(f))
}

func UIntPtr(p uintptr) uint32 {
	switch unsafe.Sizeof(p) {
	case 4:
		return UInt32(uint32(p))
	case 8:
		return UInt64(uint64(p))
	default:
		panic("unhandled pointer size")
	}
}

func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
