package domain

import (
	"bytes"
	"encoding/json"
)

// Field is a single optional override in a merge-patch. A field left out of
// the request body leaves the stored value untouched; an explicit null clears
// it to the zero value, which required-field validation then rejects.
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

var jsonNull = []byte("null")

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(b, jsonNull) {
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// Apply overwrites dst only when the field was supplied.
func (f Field[T]) Apply(dst *T) {
	if !f.Set {
		return
	}
	if !f.Valid {
		var zero T
		*dst = zero
		return
	}
	*dst = f.Value
}

// SetField builds a supplied override, mostly useful in tests.
func SetField[T any](v T) Field[T] { return Field[T]{Set: true, Valid: true, Value: v} }

// NullField builds an explicit-null override.
func NullField[T any]() Field[T] { return Field[T]{Set: true} }
