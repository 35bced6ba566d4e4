package vals

import (
	"math"
	"math/big"
	"testing"
	"unsafe"

	"src.cons.sh/pkg/persistent/hash"
	"src.cons.sh/pkg/tt"
)

type hasher struct{}

func (hasher) Hash() uint32 { return 42 }

type nonHasher struct{}

func TestHash(t *testing.T) {
	z := big.NewInt(5)
	z.Lsh(z, 8*uint(unsafe.Sizeof(int(0))))
	z.Add(z, big.NewInt(9))
	// z = 5 << wordSize + 9

	tt.Test(t, tt.Fn("Hash", Hash), tt.Table{
		Args(false).Rets(uint32(0)),
		Args(true).Rets(uint32(1)),
		Args(1).Rets(uint32(1)),
		Args(int8(-1)).Rets(hash.Int(-1)),
		Args(int64(7)).Rets(uint32(7)),
		Args(uint8(7)).Rets(uint32(7)),
		Args('c').Rets(uint32('c')),
		Args(z).Rets(hash.DJB(1, 9, 5)),
		Args(big.NewRat(3, 2)).Rets(hash.DJB(Hash(big.NewInt(3)), Hash(big.NewInt(2)))),
		Args(1.0).Rets(hash.UInt64(math.Float64bits(1.0))),
		Args("foo").Rets(hash.String("foo")),
		Args(hasher{}).Rets(uint32(42)),
		Args(nonHasher{}).Rets(uint32(0)),
	})
}

func TestLen(t *testing.T) {
	tt.Test(t, tt.Fn("Len", Len), tt.Table{
		Args("foo").Rets(3),
		Args(lener(4)).Rets(4),
		Args(1).Rets(-1),
	})
}

type lener int

func (l lener) Len() int { return int(l) }

func TestTester(t *testing.T) {
	TestValue(t, equaler{3}).
		Equal(equaler{13}).
		NotEqual(equaler{4}, "3").
		Len(-1)
	TestValue(t, "foo").Hash(hash.String("foo")).Len(3)
}
