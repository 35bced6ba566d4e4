package list

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type marshalError struct {
	index int
	cause error
}

func (err *marshalError) Error() string {
	return fmt.Sprintf("element %d: %s", err.index, err.cause)
}

func (err *marshalError) Unwrap() error { return err.cause }

func marshalJSON[E any](l List[E]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	index := 0
	for c, ok := l.(*cell[E]); ok; c, ok = c.tail.(*cell[E]) {
		if index > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := json.Marshal(c.head)
		if err != nil {
			return nil, &marshalError{index, err}
		}
		buf.Write(elemBytes)
		index++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// The slice is never nil, so that the empty list encodes as [] and not null.
func marshalYAML[E any](l List[E]) (any, error) {
	return AppendTo(l, []E{}), nil
}

// ParseJSON decodes a JSON array into a list.
func ParseJSON[E any](data []byte) (List[E], error) {
	var vs []E
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, err
	}
	return FromSlice(vs...), nil
}

// ParseYAML decodes a YAML sequence into a list.
func ParseYAML[E any](data []byte) (List[E], error) {
	var vs []E
	if err := yaml.Unmarshal(data, &vs); err != nil {
		return nil, err
	}
	return FromSlice(vs...), nil
}
