package gotransducers

import (
	"context"
	"iter"
)

// Source produces the elements a fold consumes, one at a time.
// Next returns the next element and true, or false once the source is exhausted.
// Next may block until an element is available.
type Source[T any] interface {
	Next(ctx context.Context) (T, bool, error)
}

// SourceFunc is a Source backed by a function.
type SourceFunc[T any] func(ctx context.Context) (T, bool, error)

// Next implements Source.
func (f SourceFunc[T]) Next(ctx context.Context) (T, bool, error) {
	return f(ctx)
}

// FromSlice returns a source that produces the elements of the given slices, in order.
func FromSlice[T any](slices ...[]T) Source[T] {
	sliceIdx := 0
	elemIdx := 0

	return SourceFunc[T](func(_ context.Context) (T, bool, error) {
		for sliceIdx < len(slices) {
			if elemIdx < len(slices[sliceIdx]) {
				elem := slices[sliceIdx][elemIdx]
				elemIdx++

				return elem, true, nil
			}

			sliceIdx++
			elemIdx = 0
		}

		var zero T
		return zero, false, nil
	})
}

// FromChannel returns a source that produces the elements received through the given channels, in order.
// Next fails with the context's cause if ctx is done while waiting for an element.
func FromChannel[T any](channels ...<-chan T) Source[T] {
	chIdx := 0

	return SourceFunc[T](func(ctx context.Context) (T, bool, error) {
		var zero T

		for chIdx < len(channels) {
			if contextDone(ctx) {
				return zero, false, context.Cause(ctx)
			}

			select {
			case elem, ok := <-channels[chIdx]:
				if ok {
					return elem, true, nil
				}

				chIdx++

			case <-ctx.Done():
				return zero, false, context.Cause(ctx)
			}
		}

		return zero, false, nil
	})
}

// FromSeq returns a source that produces the elements of seq, in order, and a function that releases seq.
// The release function must be called once the source is no longer needed, even if seq was not exhausted.
func FromSeq[T any](seq iter.Seq[T]) (Source[T], func()) {
	next, stop := iter.Pull(seq)

	return SourceFunc[T](func(_ context.Context) (T, bool, error) {
		elem, ok := next()
		return elem, ok, nil
	}), stop
}

// Join returns a source that produces the elements produced by the given sources, in order.
func Join[T any](sources ...Source[T]) Source[T] {
	srcIdx := 0

	return SourceFunc[T](func(ctx context.Context) (T, bool, error) {
		for srcIdx < len(sources) {
			elem, ok, err := sources[srcIdx].Next(ctx)
			if err != nil || ok {
				return elem, ok, err
			}

			srcIdx++
		}

		var zero T
		return zero, false, nil
	})
}

// Iterate returns an infinite source that produces seed, next(seed), next(next(seed)), and so on.
func Iterate[T any](seed T, next Function[T, T]) Source[T] {
	elem := seed
	started := false

	return SourceFunc[T](func(_ context.Context) (T, bool, error) {
		if started {
			elem = next(elem)
		}

		started = true

		return elem, true, nil
	})
}

// Repeatedly returns an infinite source that calls fn to produce each element.
func Repeatedly[T any](fn func() T) Source[T] {
	return SourceFunc[T](func(_ context.Context) (T, bool, error) {
		return fn(), true, nil
	})
}
