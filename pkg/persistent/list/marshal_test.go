package list

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
	"src.cons.sh/pkg/tt"
)

func TestMarshalJSON(t *testing.T) {
	tt.Test(t, tt.Fn("json.Marshal", marshalString), tt.Table{
		Args(FromSlice(1, 2, 3)).Rets(`[1,2,3]`, nil),
		Args(Empty[int]()).Rets(`[]`, nil),
		Args(FromSlice[any]("a", FromSlice(1), Empty[int]())).Rets(`["a",[1],[]]`, nil),
	})
}

func TestMarshalJSON_ElementError(t *testing.T) {
	_, err := json.Marshal(FromSlice(1.0, math.Inf(1)))
	var marshalErr *marshalError
	if !errors.As(err, &marshalErr) || marshalErr.index != 1 {
		t.Errorf("json.Marshal -> err %v, want marshalError at element 1", err)
	}
}

func TestMarshalYAML(t *testing.T) {
	tt.Test(t, tt.Fn("yaml.Marshal", marshalYAMLString), tt.Table{
		Args(FromSlice(1, 2)).Rets("- 1\n- 2\n", nil),
		Args(Empty[int]()).Rets("[]\n", nil),
		Args(FromSlice(FromSlice("a"))).Rets("- - a\n", nil),
	})
}

func TestParseJSON(t *testing.T) {
	tt.Test(t, tt.Fn("ParseJSON", ParseJSON[int]), tt.Table{
		Args([]byte(`[1, 2, 3]`)).Rets(FromSlice(1, 2, 3), nil),
		Args([]byte(`[]`)).Rets(Empty[int](), nil),
		Args([]byte(`null`)).Rets(Empty[int](), nil),
		Args([]byte(`[1, "x"]`)).Rets(nil, tt.Any),
		Args([]byte(`{`)).Rets(nil, tt.Any),
	})
}

func TestParseYAML(t *testing.T) {
	tt.Test(t, tt.Fn("ParseYAML", ParseYAML[string]), tt.Table{
		Args([]byte("- a\n- b\n")).Rets(FromSlice("a", "b"), nil),
		Args([]byte("[x]")).Rets(Singleton("x"), nil),
		Args([]byte("a: b")).Rets(nil, tt.Any),
	})
}

func TestJSONRoundTrip(t *testing.T) {
	l := FromSlice("foo", "bar")
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	l2, err := ParseJSON[string](data)
	if err != nil || !l2.Equal(l) {
		t.Errorf("ParseJSON(%s) = (%v, %v), want %v", data, l2, err, l)
	}
}

func marshalString(l any) (string, error) {
	data, err := json.Marshal(l)
	return string(data), err
}

func marshalYAMLString(l any) (string, error) {
	data, err := yaml.Marshal(l)
	return string(data), err
}
