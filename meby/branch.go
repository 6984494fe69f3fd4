package meby

import (
	"fmt"

	"github.com/charmingruby/meby/fp"
	"github.com/charmingruby/meby/option"
	"github.com/charmingruby/meby/result"
)

// Residual is what is left of a value that did not continue: an error or
// nothing. It never holds a success payload.
//
// A function returning a Meby stops at the first step that does not continue
// and lifts that step's residual into its own return value:
//
//	func port(env map[string]string) meby.Meby[int, error] {
//		value, found := env["PORT"]
//		raw, res, ok := meby.BranchOption[error](option.FromOk(value, found))
//		if !ok {
//			return meby.Lift[int](res) // Nope
//		}
//		n, res, ok := meby.BranchResult(result.FromTuple(strconv.Atoi(raw)))
//		if !ok {
//			return meby.Lift[int](res) // Oops
//		}
//		return meby.Yes[int, error](n)
//	}
type Residual[E any] struct {
	err  E
	kind Kind
}

// IsOops reports whether the residual carries an error.
func (r Residual[E]) IsOops() bool {
	return r.kind == KindOops
}

// IsNope reports whether the residual stands for absence.
func (r Residual[E]) IsNope() bool {
	return r.kind == KindNope
}

// String renders the residual for debugging output.
func (r Residual[E]) String() string {
	switch r.kind {
	case KindOops:
		return fmt.Sprintf("Residual(Oops(%v))", r.err)
	case KindNope:
		return "Residual(Nope)"
	default:
		return "Residual(none)"
	}
}

// Branch splits m into the value to continue with or the residual to return.
// ok is true only for Yes; the residual is then empty and must not be lifted.
func (m Meby[T, E]) Branch() (T, Residual[E], bool) {
	switch m.kind {
	case KindYes:
		return m.value, Residual[E]{kind: KindYes}, true
	case KindOops:
		var zero T
		return zero, Residual[E]{err: m.err, kind: KindOops}, false
	default:
		var zero T
		return zero, Residual[E]{kind: KindNope}, false
	}
}

// BranchOption branches on an Option inside a function returning Meby[_, E].
// None yields a Nope residual.
func BranchOption[E any, T any](o option.Option[T]) (T, Residual[E], bool) {
	return FromOption[T, E](o).Branch()
}

// BranchResult branches on a Result inside a function returning Meby[_, E].
// Err(e) yields an Oops residual holding e, nil included.
func BranchResult[T any, E any](r result.Result[T, E]) (T, Residual[E], bool) {
	return FromResult(r).Branch()
}

// Lift turns a residual into a Meby of any success type with the same error
// type: an error becomes Oops, absence becomes Nope. It panics on the empty
// residual of a value that continued.
func Lift[T any, E any](r Residual[E]) Meby[T, E] {
	return LiftConv[T](r, fp.Identity[E])
}

// LiftConv is Lift for a caller whose error type differs; conv translates the
// error.
func LiftConv[T any, E any, F any](r Residual[E], conv func(E) F) Meby[T, F] {
	switch r.kind {
	case KindOops:
		return Oops[T](conv(r.err))
	case KindNope:
		return Nope[T, F]()
	default:
		panic("meby: Lift called on a residual of a value that continued")
	}
}
