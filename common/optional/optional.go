// Package optional provides a tri-state field wrapper for partial updates.
//
// A JSON request body distinguishes three cases per field: the key is absent
// (leave the stored value untouched), the key is present with null (clear the
// field), and the key is present with a value (set it). A plain pointer
// collapses the first two; Optional keeps them apart through the whole
// mutation pipeline.
package optional

import (
	"bytes"
	"encoding/json"
)

type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Of returns an Optional carrying a value.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Null returns an Optional explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// Absent reports whether the field was missing from the input.
func (o Optional[T]) Absent() bool { return !o.present }

// Present reports whether the field appeared in the input, null or not.
func (o Optional[T]) Present() bool { return o.present }

// IsNull reports whether the field was present as an explicit null.
func (o Optional[T]) IsNull() bool { return o.present && o.null }

// Get returns the carried value and whether one exists.
func (o Optional[T]) Get() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Or returns the carried value, or def when absent or null.
func (o Optional[T]) Or(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

// UnmarshalJSON is only invoked for keys present in the input, so any call
// marks the field present. json "null" marks it explicitly null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if bytes.Equal(data, []byte("null")) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
