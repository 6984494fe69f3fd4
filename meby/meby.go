// Package meby implements Meby, a value that is exactly one of Yes (a result),
// Oops (an error) or Nope (nothing to report).
//
// Meby replaces the nested shapes option.Option[result.Result[T, E]] and
// result.Result[option.Option[T], E]: both convert into a Meby and back without
// losing information.
//
// Example:
//
//	func findUser(id string) meby.Meby[User, error] {
//		return meby.FromLookup(repo.Find(id))
//	}
//
//	switch u := findUser("42"); u.Kind() {
//	case meby.KindYes:
//		greet(u.Unwrap())
//	case meby.KindOops:
//		log.Println(u.UnwrapOops())
//	case meby.KindNope:
//		signUp()
//	}
//
// Extraction and conversion functions treat their input as consumed: the source
// value should not be used again once it has been unwrapped or converted.
package meby

import (
	"fmt"

	"github.com/charmingruby/meby/fp"
)

// Kind names the active variant of a Meby.
type Kind uint8

const (
	// KindNope is the zero Kind, so the zero Meby is Nope.
	KindNope Kind = iota
	// KindYes marks a Meby holding a result.
	KindYes
	// KindOops marks a Meby holding an error.
	KindOops
)

// String returns the variant name: Nope, Yes or Oops.
func (k Kind) String() string {
	switch k {
	case KindNope:
		return "Nope"
	case KindYes:
		return "Yes"
	case KindOops:
		return "Oops"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Meby holds a T (Yes), an E (Oops) or nothing (Nope). The zero value is Nope.
// Payloads are stored inline; only the one selected by the kind is meaningful.
type Meby[T any, E any] struct {
	value T
	err   E
	kind  Kind
}

// Yes wraps a successful result.
func Yes[T any, E any](value T) Meby[T, E] {
	return Meby[T, E]{value: value, kind: KindYes}
}

// Oops wraps an error. The error is data; nothing panics or returns early.
func Oops[T any, E any](err E) Meby[T, E] {
	return Meby[T, E]{err: err, kind: KindOops}
}

// Nope returns a Meby with nothing in it.
func Nope[T any, E any]() Meby[T, E] {
	return Meby[T, E]{}
}

// Kind reports the active variant.
func (m Meby[T, E]) Kind() Kind {
	return m.kind
}

// IsYes reports whether m holds a result.
func (m Meby[T, E]) IsYes() bool {
	return m.kind == KindYes
}

// IsOops reports whether m holds an error.
func (m Meby[T, E]) IsOops() bool {
	return m.kind == KindOops
}

// IsNope reports whether m holds nothing.
func (m Meby[T, E]) IsNope() bool {
	return m.kind == KindNope
}

// Get returns the Yes payload and whether m is Yes.
func (m Meby[T, E]) Get() (T, bool) {
	if m.kind != KindYes {
		var zero T
		return zero, false
	}
	return m.value, true
}

// GetOops returns the Oops payload and whether m is Oops.
func (m Meby[T, E]) GetOops() (E, bool) {
	if m.kind != KindOops {
		var zero E
		return zero, false
	}
	return m.err, true
}

// Unwrap returns the Yes payload. It panics when m is Oops or Nope; calling it
// without checking first is a bug in the caller.
func (m Meby[T, E]) Unwrap() T {
	switch m.kind {
	case KindYes:
		return m.value
	case KindOops:
		panic("meby: Unwrap called on a value that turned out to be an error")
	default:
		panic("meby: Unwrap called on a value that turned out to be nope")
	}
}

// UnwrapOops returns the Oops payload. It panics when m is Yes or Nope.
func (m Meby[T, E]) UnwrapOops() E {
	switch m.kind {
	case KindOops:
		return m.err
	case KindYes:
		panic("meby: UnwrapOops called on a value that turned out to be a yes")
	default:
		panic("meby: UnwrapOops called on a value that turned out to be nope")
	}
}

// UnwrapOr returns the Yes payload, otherwise fallback. An Oops payload is
// dropped; use UnwrapOrElse to look at it.
func (m Meby[T, E]) UnwrapOr(fallback T) T {
	return m.UnwrapOrElse(func(E) T { return fallback }, fp.Constant(fallback))
}

// UnwrapOrElse returns the Yes payload, or computes a fallback from the error
// (onOops) or from nothing (onNope).
func (m Meby[T, E]) UnwrapOrElse(onOops func(E) T, onNope func() T) T {
	switch m.kind {
	case KindYes:
		return m.value
	case KindOops:
		return onOops(m.err)
	default:
		return onNope()
	}
}

// YesOr replaces an Oops or Nope with Yes(fallback), discarding any error. A Yes
// keeps its payload. It returns m for chaining.
func (m *Meby[T, E]) YesOr(fallback T) *Meby[T, E] {
	if m.kind != KindYes {
		*m = Yes[T, E](fallback)
	}
	return m
}

// Swap stores other in m and returns what m held before.
func (m *Meby[T, E]) Swap(other Meby[T, E]) Meby[T, E] {
	prev := *m
	*m = other
	return prev
}

// Filter turns a Yes whose payload fails predicate into Nope.
func (m Meby[T, E]) Filter(predicate func(T) bool) Meby[T, E] {
	if m.kind == KindYes && !predicate(m.value) {
		return Nope[T, E]()
	}
	return m
}

// OrElse returns m when it is Yes, otherwise other.
func (m Meby[T, E]) OrElse(other Meby[T, E]) Meby[T, E] {
	if m.kind == KindYes {
		return m
	}
	return other
}

// String is for debugging; it is not a stable encoding.
func (m Meby[T, E]) String() string {
	switch m.kind {
	case KindYes:
		return fmt.Sprintf("Yes(%v)", m.value)
	case KindOops:
		return fmt.Sprintf("Oops(%v)", m.err)
	default:
		return "Nope"
	}
}
