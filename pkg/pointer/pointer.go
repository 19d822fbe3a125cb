// Package pointer helps with the optional fields of the generated API types.
package pointer

// Indirect returns the pointed value or the zero value for a nil pointer.
func Indirect[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

// PtrWithZeroAsNil returns nil for the zero value, so the field is omitted from JSON.
func PtrWithZeroAsNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

// SliceWithEmptyAsNil returns nil for an empty slice, so the field is omitted from JSON.
func SliceWithEmptyAsNil[T any](s []T) *[]T {
	if len(s) == 0 {
		return nil
	}
	return &s
}
