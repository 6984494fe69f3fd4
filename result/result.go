// Package result is the value-or-error shape: a success holding a T or a
// failure holding an E.
//
// The error side is a type parameter, so a Result[T, string] or a
// Result[T, *MyError] is as valid as the usual Result[T, error]. FromTuple
// bridges the (T, error) pairs of ordinary Go code.
//
// Example:
//
//	res := result.FromTuple(strconv.Atoi(raw))
//	if port, ok := res.Get(); ok {
//		listen(port)
//	}
package result

import "fmt"

// Result holds a success value or an error value, never both. Success is
// tracked by its own flag rather than by a nil error, so Err(nil) is still a
// failure and keeps its nil payload. The zero value is a failure holding the
// zero E.
type Result[T any, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok builds a successful Result. The error type cannot be inferred, so it is
// usually spelled out:
//
//	res := result.Ok[int, error](200)
func Ok[T any, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err builds a failed Result. The payload is stored as given, including nil.
//
// Example:
//
//	res := result.Err[int](errors.New("boom"))
func Err[T any, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// FromTuple turns a (value, error) pair into a Result: a non-nil err fails,
// a nil err succeeds.
//
// Example:
//
//	res := result.FromTuple(os.ReadFile(path))
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// IsOk reports success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and whether r succeeded.
func (r Result[T, E]) Get() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// GetErr returns the error value and whether r failed.
func (r Result[T, E]) GetErr() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// String renders Ok(v) or Err(e) for debugging output.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
