// Package fp holds the two function helpers the meby package is built from.
//
// Example:
//
//	widened := meby.Convert(m, fp.Identity[int], wrapErr)
package fp

// Identity returns v unchanged. It is the no-op conversion for meby.Convert
// and the error conversion meby.Lift hands to meby.LiftConv.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always yields v, the shape of the lazy
// fallbacks taken by meby.Meby.UnwrapOrElse.
//
// Example:
//
//	retries := m.UnwrapOrElse(onOops, fp.Constant(3))
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}
