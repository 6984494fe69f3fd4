package meby

import "iter"

// Sequence turns a slice of Meby into a Meby of a slice. The first element that
// is not Yes, in order, decides the outcome: an Oops gives Oops, a Nope gives
// Nope. An empty slice gives Yes of an empty slice.
func Sequence[T any, E any](items []Meby[T, E]) Meby[[]T, E] {
	values := make([]T, 0, len(items))
	for _, item := range items {
		v, res, ok := item.Branch()
		if !ok {
			return Lift[[]T](res)
		}
		values = append(values, v)
	}
	return Yes[[]T, E](values)
}

// Traverse maps items through fn and sequences the results, stopping at the
// first step that does not continue.
func Traverse[A any, T any, E any](items []A, fn func(A) Meby[T, E]) Meby[[]T, E] {
	values := make([]T, 0, len(items))
	for _, item := range items {
		v, res, ok := fn(item).Branch()
		if !ok {
			return Lift[[]T](res)
		}
		values = append(values, v)
	}
	return Yes[[]T, E](values)
}

// Collect keeps the Yes payloads and drops the rest. The returned slice never
// shares a backing array with items.
func Collect[T any, E any](items []Meby[T, E]) []T {
	values := make([]T, 0, len(items))
	for _, item := range items {
		if item.kind == KindYes {
			values = append(values, item.value)
		}
	}
	return values
}

// CollectSeq is Collect over a lazy sequence.
func CollectSeq[T any, E any](seq iter.Seq[Meby[T, E]]) []T {
	values := []T{}
	for item := range seq {
		if item.kind == KindYes {
			values = append(values, item.value)
		}
	}
	return values
}

// Partition splits items into Yes payloads, Oops payloads and a count of Nopes.
func Partition[T any, E any](items []Meby[T, E]) (yes []T, oops []E, nopes int) {
	yes = make([]T, 0, len(items))
	oops = make([]E, 0, len(items))
	for _, item := range items {
		switch item.kind {
		case KindYes:
			yes = append(yes, item.value)
		case KindOops:
			oops = append(oops, item.err)
		default:
			nopes++
		}
	}
	return yes, oops, nopes
}
