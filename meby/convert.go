package meby

import (
	"github.com/charmingruby/meby/option"
	"github.com/charmingruby/meby/result"
)

// FromOption maps Some(v) to Yes(v) and None to Nope.
func FromOption[T any, E any](o option.Option[T]) Meby[T, E] {
	if v, ok := o.Get(); ok {
		return Yes[T, E](v)
	}
	return Nope[T, E]()
}

// FromResult maps Ok(v) to Yes(v) and Err(e) to Oops(e), whatever E is.
//
// Example:
//
//	m := meby.FromResult(result.Ok[int, string](5)) // Yes(5)
func FromResult[T any, E any](r result.Result[T, E]) Meby[T, E] {
	if err, failed := r.GetErr(); failed {
		return Oops[T](err)
	}
	v, _ := r.Get()
	return Yes[T, E](v)
}

// FromOptionResult flattens an optional result: None is Nope, Some(Ok(v)) is
// Yes(v) and Some(Err(e)) is Oops(e).
func FromOptionResult[T any, E any](o option.Option[result.Result[T, E]]) Meby[T, E] {
	r, ok := o.Get()
	if !ok {
		return Nope[T, E]()
	}
	return FromResult(r)
}

// FromResultOption flattens a fallible option: Ok(Some(v)) is Yes(v), Ok(None)
// is Nope and Err(e) is Oops(e).
func FromResultOption[T any, E any](r result.Result[option.Option[T], E]) Meby[T, E] {
	if err, failed := r.GetErr(); failed {
		return Oops[T](err)
	}
	o, _ := r.Get()
	return FromOption[T, E](o)
}

// ToResultOption is the inverse of FromResultOption; the error payload is
// carried as is, nil included.
func ToResultOption[T any, E any](m Meby[T, E]) result.Result[option.Option[T], E] {
	switch m.kind {
	case KindYes:
		return result.Ok[option.Option[T], E](option.Some(m.value))
	case KindOops:
		return result.Err[option.Option[T]](m.err)
	default:
		return result.Ok[option.Option[T], E](option.None[T]())
	}
}

// ToOptionResult is the inverse of FromOptionResult.
func ToOptionResult[T any, E any](m Meby[T, E]) option.Option[result.Result[T, E]] {
	switch m.kind {
	case KindYes:
		return option.Some(result.Ok[T, E](m.value))
	case KindOops:
		return option.Some(result.Err[T](m.err))
	default:
		return option.None[result.Result[T, E]]()
	}
}

// ToOption keeps only the Yes payload; Oops and Nope both become None.
func (m Meby[T, E]) ToOption() option.Option[T] {
	return option.FromOk(m.Get())
}

// FromOk builds a Meby from a comma-ok pair: Yes(v) when ok, otherwise Nope.
func FromOk[T any, E any](value T, ok bool) Meby[T, E] {
	return FromOption[T, E](option.FromOk(value, ok))
}

// FromPtr copies the pointee into a Yes, or returns Nope for a nil pointer.
func FromPtr[T any, E any](ptr *T) Meby[T, E] {
	return FromOption[T, E](option.FromPtr(ptr))
}

// FromTuple builds a Meby from a (value, error) pair. It never yields Nope.
func FromTuple[T any](value T, err error) Meby[T, error] {
	return FromResult(result.FromTuple(value, err))
}

// FromLookup builds a Meby from the (value, found, error) triple returned by
// repository-style lookups. A non-nil err wins over found.
//
// Example:
//
//	user := meby.FromLookup(store.Get(ctx, id))
func FromLookup[T any](value T, found bool, err error) Meby[T, error] {
	if err != nil {
		return Oops[T](err)
	}
	return FromOk[T, error](value, found)
}

// ToLookup is the inverse of FromLookup. An Oops holding a nil error reads
// back as not found, since the triple has no other way to say it.
func ToLookup[T any](m Meby[T, error]) (T, bool, error) {
	var zero T
	switch m.kind {
	case KindYes:
		return m.value, true, nil
	case KindOops:
		return zero, false, m.err
	default:
		return zero, false, nil
	}
}
