package patch

import (
	"encoding"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

type state uint8

const (
	stateUnset state = iota
	stateNull
	stateSet
)

// Field is a value in a partial update. A Field is Unset when the key was
// absent from the payload, Null when it was explicitly null and Set otherwise.
type Field[T any] struct {
	value T
	state state
}

func Set[T any](v T) Field[T] {
	return Field[T]{value: v, state: stateSet}
}

func Null[T any]() Field[T] {
	return Field[T]{state: stateNull}
}

func Unset[T any]() Field[T] {
	return Field[T]{}
}

func (f Field[T]) IsSet() bool   { return f.state == stateSet }
func (f Field[T]) IsNull() bool  { return f.state == stateNull }
func (f Field[T]) IsUnset() bool { return f.state == stateUnset }

// Get returns the value and whether it was set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == stateSet
}

// ValidationValue exposes the set value to the validator. Unset and Null
// fields validate as missing.
func (f Field[T]) ValidationValue() interface{} {
	if f.state != stateSet {
		return nil
	}
	return f.value
}

func (f Field[T]) String() string {
	switch f.state {
	case stateSet:
		return fmt.Sprintf("Set(%v)", f.value)
	case stateNull:
		return "Null"
	default:
		return "Unset"
	}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Set(v)
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != stateSet {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalText decodes a form value. Strings are taken as is, so an empty
// string is Set(""). For every other type an empty value is Null.
func (f *Field[T]) UnmarshalText(text []byte) error {
	var v T
	s := string(text)
	if _, isString := any(v).(string); !isString && s == "" {
		*f = Null[T]()
		return nil
	}
	switch dst := any(&v).(type) {
	case *string:
		*dst = s
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.WithStack(err)
		}
		*dst = n
	case *float64:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.WithStack(err)
		}
		*dst = n
	case *bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return errors.WithStack(err)
		}
		*dst = b
	case encoding.TextUnmarshaler:
		if err := dst.UnmarshalText(text); err != nil {
			return err
		}
	default:
		return errors.Errorf("unsupported patch field type %T", v)
	}
	*f = Set(v)
	return nil
}
