package gotransducers

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Transduce applies xf to rf and folds the elements produced by src into acc using the resulting reducer,
// returning the completed accumulator.
//
// Elements are pulled from src one at a time, and only after the previous step has returned.
// Once a step terminates the fold, src is not advanced any further. The reducer's Complete is called exactly
// once, whether the fold terminated early or src was exhausted.
//
// If src or the reducer fail, Transduce returns the zero value and the error, without calling Complete.
// Transduce logs to the logger attached to ctx, if any.
func Transduce[A any, T any, U any](ctx context.Context, src Source[T], xf Transducer[A, T, U], rf Reducer[U, A],
	acc A,
) (A, error) {
	return fold(ctx, src, xf(rf), acc)
}

// TransduceInit is like Transduce, but starts with the accumulator returned by Init.
func TransduceInit[A any, T any, U any](ctx context.Context, src Source[T], xf Transducer[A, T, U],
	rf Reducer[U, A],
) (A, error) {
	wrapped := xf(rf)
	return fold(ctx, src, wrapped, wrapped.Init())
}

// TransduceSlice applies xf to each element produced by src and collects the results into a slice.
func TransduceSlice[T any, U any](ctx context.Context, src Source[T], xf Transducer[[]U, T, U]) ([]U, error) {
	return Transduce(ctx, src, xf, Collect[U](), []U{})
}

// Reduce folds the elements produced by src into acc using rf, returning the completed accumulator.
func Reduce[A any, T any](ctx context.Context, src Source[T], rf Reducer[T, A], acc A) (A, error) {
	return fold(ctx, src, rf, acc)
}

// AnyMatch returns true as soon as pred returns true for an element produced by src, that is, an element matches.
// src is not advanced past the first matching element.
func AnyMatch[T any](ctx context.Context, src Source[T], pred Predicate[T]) (bool, error) {
	return Reduce(ctx, src, &ReducerFuncs[T, bool]{
		StepFunc: func(_ bool, elem T) (Result[bool], error) {
			if pred(elem) {
				return Terminate(true), nil
			}

			return Continue(false), nil
		},
	}, false)
}

// AllMatch returns true if pred returns true for all elements produced by src, that is, all elements match.
// src is not advanced past the first element that does not match.
func AllMatch[T any](ctx context.Context, src Source[T], pred Predicate[T]) (bool, error) {
	return Reduce(ctx, src, &ReducerFuncs[T, bool]{
		StepFunc: func(_ bool, elem T) (Result[bool], error) {
			if !pred(elem) {
				return Terminate(false), nil
			}

			return Continue(true), nil
		},
	}, true)
}

// Count returns the number of elements produced by src.
func Count[T any](ctx context.Context, src Source[T]) (uint64, error) {
	return Reduce(ctx, src, Counter[T](), 0)
}

func fold[A any, T any](ctx context.Context, src Source[T], rf Reducer[T, A], acc A) (A, error) {
	var zero A

	logger := zerolog.Ctx(ctx)

	pulled := uint64(0)

	for !Halted(rf) {
		elem, ok, err := src.Next(ctx)
		if err != nil {
			return zero, errors.Wrapf(err, "pull element %d", pulled)
		}

		if !ok {
			break
		}

		pulled++

		res, err := rf.Step(acc, elem)
		if err != nil {
			return zero, err
		}

		acc = res.Value()

		if res.Terminated() {
			logger.Debug().Uint64("pulled", pulled).Msg("fold terminated early")
			break
		}
	}

	acc, err := rf.Complete(acc)
	if err != nil {
		return zero, err
	}

	logger.Debug().Uint64("pulled", pulled).Msg("fold complete")

	return acc, nil
}
