// Package option is the optional-value shape: a value of type T that is either
// present (Some) or absent (None).
//
// meby.FromOption and meby.ToOptionResult convert between this shape and the
// tri-state meby.Meby; meby.FromOk and meby.FromPtr go through FromOk and
// FromPtr here.
package option

import "fmt"

// Option holds either a value of type T or nothing. The zero value is None.
// Some(nil) is a present value for nil-capable types; test with IsSome, not by
// comparing the payload with nil.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from a comma-ok pair such as a map lookup.
func FromOk[T any](value T, ok bool) Option[T] {
	if ok {
		return Some(value)
	}
	return None[T]()
}

// FromPtr copies the pointee, or returns None for a nil pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr != nil {
		return Some(*ptr)
	}
	return None[T]()
}

// IsSome reports whether a value is present, including an explicit nil.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present. The value is the zero T
// when absent.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// String renders Some(v) or None for debugging output.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
