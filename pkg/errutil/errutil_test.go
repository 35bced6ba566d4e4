package errutil_test

import (
	"errors"
	"io/fs"
	"testing"

	. "src.cons.sh/pkg/errutil"
	"src.cons.sh/pkg/persistent/list"
	"src.cons.sh/pkg/tt"
)

var Args = tt.Args

func indexErr(l list.List[int], i int) error {
	_, err := l.Index(i)
	return err
}

func sliceErr(l list.List[int], from, to int) error {
	_, err := list.Slice(l, from, to)
	return err
}

var (
	l3        = list.FromSlice(1, 2, 3)
	errIndex  = indexErr(l3, 5)
	errSlice  = sliceErr(l3, 2, 1)
	errAbsent = fs.ErrNotExist
)

func TestNamed(t *testing.T) {
	err := Named("a.json", errIndex)
	if got, want := err.Error(), "a.json: index 5 not found"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !errors.Is(err, list.ErrIndexNotFound) {
		t.Errorf("Named error does not match list.ErrIndexNotFound")
	}
	if Named("a.json", nil) != nil {
		t.Errorf("Named(name, nil) != nil")
	}
}

func TestMulti(t *testing.T) {
	tt.Test(t, tt.Fn("Multi", Multi), tt.Table{
		Args().Rets(nil),
		Args(nil, nil).Rets(nil),
		Args(errIndex).Rets(list.ErrIndexNotFound),
		Args(nil, errSlice, nil).Rets(list.ErrInvalidArgument),
	})
}

func TestMulti_Message(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{
			Multi(Named("-", errIndex), Named("b.json", errSlice)),
			"multiple errors: -: index 5 not found; " +
				"b.json: invalid argument: start index 2 > end index 1",
		},
		{
			Multi(Multi(errIndex, errAbsent), Multi(nil, errIndex)),
			"multiple errors: index 5 not found; file does not exist; index 5 not found",
		},
	}
	for _, test := range tests {
		if got := test.err.Error(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestMulti_MatchesEveryListError(t *testing.T) {
	err := Multi(Named("a", errIndex), Named("b", Multi(errSlice, errAbsent)))
	for _, target := range []error{list.ErrIndexNotFound, list.ErrInvalidArgument, fs.ErrNotExist} {
		if !errors.Is(err, target) {
			t.Errorf("errors.Is(%v, %v) = false, want true", err, target)
		}
	}
	for _, target := range []error{list.ErrNoMoreElements, list.ErrUnsupported} {
		if errors.Is(err, target) {
			t.Errorf("errors.Is(%v, %v) = true, want false", err, target)
		}
	}
}
