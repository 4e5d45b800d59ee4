// Package optional provides a value wrapper that distinguishes "not
// supplied" from a supplied zero value.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds a T that may be absent. The zero Value is absent.
type Value[T any] struct {
	v   T
	set bool
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, set: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// IsSet reports whether a value was supplied.
func (o Value[T]) IsSet() bool { return o.set }

// Get returns the held value and whether it is present.
func (o Value[T]) Get() (T, bool) { return o.v, o.set }

// OrElse returns the held value, or def when absent.
func (o Value[T]) OrElse(def T) T {
	if o.set {
		return o.v
	}
	return def
}

// UnmarshalJSON marks the value present. A JSON null leaves it absent.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Value[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

// MarshalJSON encodes an absent value as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}
