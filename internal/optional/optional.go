// Package optional provides a JSON field wrapper that tells apart a key that
// was left out, a key sent as null and a key sent with a value.
package optional

import (
	"bytes"
	"encoding/json"
)

type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// IsZero lets `omitzero` drop fields that were never set.
func (f Field[T]) IsZero() bool { return !f.Set }

// Present reports whether the field carried a non-null value.
func (f Field[T]) Present() bool { return f.Set && !f.Null }

func (f Field[T]) Or(def T) T {
	if f.Present() {
		return f.Value
	}
	return def
}
