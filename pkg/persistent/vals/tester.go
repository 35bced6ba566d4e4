package vals

import (
	"testing"
)

// Tester is a helper for testing properties of a value.
type Tester struct {
	t *testing.T
	v any
}

// TestValue returns a ValueTester.
func TestValue(t *testing.T, v any) Tester {
	return Tester{t, v}
}

// Hash tests the Hash of the value.
func (vt Tester) Hash(wantHash uint32) Tester {
	vt.t.Helper()
	hash := Hash(vt.v)
	if hash != wantHash {
		vt.t.Errorf("Hash(v) = %v, want %v", hash, wantHash)
	}
	return vt
}

// Len tests the Len of the value.
func (vt Tester) Len(wantLen int) Tester {
	vt.t.Helper()
	n := Len(vt.v)
	if n != wantLen {
		vt.t.Errorf("Len(v) = %v, want %v", n, wantLen)
	}
	return vt
}

// Equal tests that the value is Equal to every of the given values, in both
// directions, and that they hash to the same value.
func (vt Tester) Equal(others ...any) Tester {
	vt.t.Helper()
	for _, other := range others {
		if !Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %v) = false, want true", other)
		}
		if !Equal(other, vt.v) {
			vt.t.Errorf("Equal(%v, v) = false, want true", other)
		}
		if h1, h2 := Hash(vt.v), Hash(other); h1 != h2 {
			vt.t.Errorf("Hash(v) = %v, Hash(%v) = %v, want equal", h1, other, h2)
		}
	}
	return vt
}

// NotEqual tests that the value is not Equal to any of the given values, in
// either direction.
func (vt Tester) NotEqual(others ...any) Tester {
	vt.t.Helper()
	for _, other := range others {
		if Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %v) = true, want false", other)
		}
		if Equal(other, vt.v) {
			vt.t.Errorf("Equal(%v, v) = true, want false", other)
		}
	}
	return vt
}
