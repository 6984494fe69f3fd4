package meby

import (
	"github.com/charmingruby/meby/fp"
	"github.com/charmingruby/meby/option"
	"github.com/charmingruby/meby/result"
)

// Convert keeps the variant of m and translates its payload: onYes for a Yes,
// onOops for an Oops. Nope stays Nope. Pass fp.Identity for a side that does
// not change.
//
// Example:
//
//	wide := meby.Convert(m, func(n int32) int64 { return int64(n) }, fp.Identity[error])
func Convert[T any, E any, U any, F any](m Meby[T, E], onYes func(T) U, onOops func(E) F) Meby[U, F] {
	switch m.kind {
	case KindYes:
		return Yes[U, F](onYes(m.value))
	case KindOops:
		return Oops[U](onOops(m.err))
	default:
		return Nope[U, F]()
	}
}

// Map transforms the Yes payload.
func Map[T any, E any, U any](m Meby[T, E], fn func(T) U) Meby[U, E] {
	return Convert(m, fn, fp.Identity[E])
}

// MapOops transforms the Oops payload.
func MapOops[T any, E any, F any](m Meby[T, E], fn func(E) F) Meby[T, F] {
	return Convert(m, fp.Identity[T], fn)
}

// FlatMap continues with fn on Yes; Oops and Nope pass through unchanged.
func FlatMap[T any, U any, E any](m Meby[T, E], fn func(T) Meby[U, E]) Meby[U, E] {
	v, res, ok := m.Branch()
	if !ok {
		return Lift[U](res)
	}
	return fn(v)
}

// FlatMapConv is FlatMap into a step with a different error type; conv
// translates an Oops of m.
func FlatMapConv[T any, U any, E any, F any](m Meby[T, E], conv func(E) F, fn func(T) Meby[U, F]) Meby[U, F] {
	v, res, ok := m.Branch()
	if !ok {
		return LiftConv[U](res, conv)
	}
	return fn(v)
}

// FlatMapOption continues with an Option-valued step. None becomes Nope.
func FlatMapOption[T any, U any, E any](m Meby[T, E], fn func(T) option.Option[U]) Meby[U, E] {
	v, res, ok := m.Branch()
	if !ok {
		return Lift[U](res)
	}
	return FromOption[U, E](fn(v))
}

// FlatMapResult continues with a Result-valued step. Err becomes Oops.
func FlatMapResult[T any, U any, E any](m Meby[T, E], fn func(T) result.Result[U, E]) Meby[U, E] {
	v, res, ok := m.Branch()
	if !ok {
		return Lift[U](res)
	}
	return FromResult(fn(v))
}

// TryMap continues with a plain (value, error) step.
//
// Example:
//
//	port := meby.TryMap(raw, strconv.Atoi)
func TryMap[T any, U any](m Meby[T, error], fn func(T) (U, error)) Meby[U, error] {
	v, res, ok := m.Branch()
	if !ok {
		return Lift[U](res)
	}
	return FromTuple(fn(v))
}

// Fold collapses m by calling the handler of its variant.
func Fold[T any, E any, U any](m Meby[T, E], onNope func() U, onOops func(E) U, onYes func(T) U) U {
	switch m.kind {
	case KindYes:
		return onYes(m.value)
	case KindOops:
		return onOops(m.err)
	default:
		return onNope()
	}
}

// Tap runs fn on a Yes payload and returns m.
func Tap[T any, E any](m Meby[T, E], fn func(T)) Meby[T, E] {
	if m.kind == KindYes {
		fn(m.value)
	}
	return m
}

// TapOops runs fn on an Oops payload and returns m.
func TapOops[T any, E any](m Meby[T, E], fn func(E)) Meby[T, E] {
	if m.kind == KindOops {
		fn(m.err)
	}
	return m
}
