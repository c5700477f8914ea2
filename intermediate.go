package gotransducers

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// IndexedFunction returns the result of applying an operation to elem.
// The index is the 0-based index of elem, in the order it reached the transducer.
type IndexedFunction[T any, U any] func(elem T, index uint64) U

// TryFunction returns the result of applying an operation to elem, or an error.
type TryFunction[T any, U any] func(elem T) (U, error)

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// An ElementError is returned by TryMap and TryFilter when the function fails for an element.
type ElementError[T any] struct {
	// Element is the element that caused the error.
	Element T

	// Err is the error returned by the function.
	Err error
}

// Map returns a transducer that calls mapp for each element, mapping it to type U.
func Map[A any, T any, U any](mapp Function[T, U]) Transducer[A, T, U] {
	return func(rf Reducer[U, A]) Reducer[T, A] {
		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			return rf.Step(acc, mapp(elem))
		})
	}
}

// MapIndexed returns a transducer that calls mapp for each element and its index, mapping it to type U.
func MapIndexed[A any, T any, U any](mapp IndexedFunction[T, U]) Transducer[A, T, U] {
	return func(rf Reducer[U, A]) Reducer[T, A] {
		index := uint64(0)

		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			outElem := mapp(elem, index)
			index++

			return rf.Step(acc, outElem)
		})
	}
}

// TryMap returns a transducer that calls mapp for each element, mapping it to type U.
// If mapp fails, the run fails with an *ElementError wrapping the error.
func TryMap[A any, T any, U any](mapp TryFunction[T, U]) Transducer[A, T, U] {
	return func(rf Reducer[U, A]) Reducer[T, A] {
		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			outElem, err := mapp(elem)
			if err != nil {
				return Result[A]{}, &ElementError[T]{
					Element: elem,
					Err:     err,
				}
			}

			return rf.Step(acc, outElem)
		})
	}
}

// FlatMap returns a transducer that calls mapp for each element, passing each of the returned elements
// downstream, in order.
func FlatMap[A any, T any, U any](mapp Function[T, []U]) Transducer[A, T, U] {
	return func(rf Reducer[U, A]) Reducer[T, A] {
		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			for _, outElem := range mapp(elem) {
				res, err := rf.Step(acc, outElem)
				if err != nil || res.Terminated() {
					return res, err
				}

				acc = res.Value()
			}

			return Continue(acc), nil
		})
	}
}

// Filter returns a transducer that passes downstream only elements for which filter returns true.
// Dropped elements are not seen by any downstream transducer.
func Filter[A any, T any](filter Predicate[T]) Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			if !filter(elem) {
				return Continue(acc), nil
			}

			return rf.Step(acc, elem)
		})
	}
}

// Remove returns a transducer that drops elements for which filter returns true.
func Remove[A any, T any](filter Predicate[T]) Transducer[A, T, T] {
	return Filter[A](Not(filter))
}

// TryFilter returns a transducer that passes downstream only elements for which filter returns true.
// If filter fails, the run fails with an *ElementError wrapping the error.
func TryFilter[A any, T any](filter TryFunction[T, bool]) Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			keep, err := filter(elem)
			if err != nil {
				return Result[A]{}, &ElementError[T]{
					Element: elem,
					Err:     err,
				}
			}

			if !keep {
				return Continue(acc), nil
			}

			return rf.Step(acc, elem)
		})
	}
}

// Take returns a transducer that passes downstream the first max elements and then terminates the fold.
// If max is 0, the fold terminates before any element is consumed.
func Take[A any, T any](max uint64) Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		done := uint64(0)

		r := wrap(rf, func(acc A, elem T) (Result[A], error) {
			if done >= max {
				return Terminate(acc), nil
			}

			done++

			res, err := rf.Step(acc, elem)
			if err != nil || res.Terminated() {
				return res, err
			}

			if done == max {
				return Terminate(res.Value()), nil
			}

			return res, nil
		})

		r.HaltedFunc = func() bool {
			return done >= max || Halted(rf)
		}

		return r
	}
}

// TakeWhile returns a transducer that passes elements downstream as long as pred returns true,
// terminating the fold at the first element for which it returns false.
func TakeWhile[A any, T any](pred Predicate[T]) Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		stopped := false

		r := wrap(rf, func(acc A, elem T) (Result[A], error) {
			if stopped || !pred(elem) {
				stopped = true
				return Terminate(acc), nil
			}

			return rf.Step(acc, elem)
		})

		r.HaltedFunc = func() bool {
			return stopped || Halted(rf)
		}

		return r
	}
}

// Drop returns a transducer that drops the first num elements and passes the rest downstream.
func Drop[A any, T any](num uint64) Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		done := uint64(0)

		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			if done < num {
				done++
				return Continue(acc), nil
			}

			return rf.Step(acc, elem)
		})
	}
}

// DropWhile returns a transducer that drops elements as long as pred returns true, and passes
// the first element for which it returns false, and all elements after it, downstream.
func DropWhile[A any, T any](pred Predicate[T]) Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		dropping := true

		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			if dropping && pred(elem) {
				return Continue(acc), nil
			}

			dropping = false

			return rf.Step(acc, elem)
		})
	}
}

// Chunk returns a transducer that groups elements into slices of size elements.
// The last chunk, passed downstream on completion, may be smaller.
// Chunk panics if size is 0.
func Chunk[A any, T any](size uint64) Transducer[A, T, []T] {
	if size == 0 {
		panic("gotransducers.Chunk: size must be positive")
	}

	return func(rf Reducer[[]T, A]) Reducer[T, A] {
		buf := make([]T, 0, size)

		r := wrap(rf, func(acc A, elem T) (Result[A], error) {
			buf = append(buf, elem)
			if uint64(len(buf)) < size {
				return Continue(acc), nil
			}

			chunk := buf
			buf = make([]T, 0, size)

			return rf.Step(acc, chunk)
		})

		r.CompleteFunc = func(acc A) (A, error) {
			if len(buf) > 0 {
				chunk := buf
				buf = nil

				res, err := rf.Step(acc, chunk)
				if err != nil {
					return acc, err
				}

				acc = res.Value()
			}

			return rf.Complete(acc)
		}

		return r
	}
}

// Dedupe returns a transducer that drops elements equal to the element immediately before them.
func Dedupe[A any, T comparable]() Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		var prev T
		seen := false

		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			if seen && elem == prev {
				return Continue(acc), nil
			}

			prev = elem
			seen = true

			return rf.Step(acc, elem)
		})
	}
}

// Distinct returns a transducer that drops elements equal to any element before them.
func Distinct[A any, T comparable]() Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		seen := map[T]struct{}{}

		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			if _, ok := seen[elem]; ok {
				return Continue(acc), nil
			}

			seen[elem] = struct{}{}

			return rf.Step(acc, elem)
		})
	}
}

// Sort returns a transducer that buffers all elements, sorts them using less, and passes them downstream
// in sorted order on completion.
func Sort[A any, T any](less LessFunc[T]) Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		buf := []T{}

		r := wrap(rf, func(acc A, elem T) (Result[A], error) {
			buf = append(buf, elem)
			return Continue(acc), nil
		})

		r.CompleteFunc = func(acc A) (A, error) {
			sorted := buf
			buf = nil

			slices.SortFunc(sorted, func(a T, b T) bool {
				return less(a, b)
			})

			for _, elem := range sorted {
				res, err := rf.Step(acc, elem)
				if err != nil {
					return acc, err
				}

				acc = res.Value()

				if res.Terminated() {
					break
				}
			}

			return rf.Complete(acc)
		}

		return r
	}
}

// Tap returns a transducer that calls tap for each element and passes it downstream unchanged.
func Tap[A any, T any](tap func(elem T)) Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		return wrap(rf, func(acc A, elem T) (Result[A], error) {
			tap(elem)
			return rf.Step(acc, elem)
		})
	}
}

// Logged returns a transducer that logs each element passing through it at trace level, and a summary
// at debug level when the fold terminates or completes. Elements are passed downstream unchanged.
func Logged[A any, T any](logger zerolog.Logger, stage string) Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		logger := logger.With().Str("stage", stage).Logger()

		index := uint64(0)

		r := wrap(rf, func(acc A, elem T) (Result[A], error) {
			logger.Trace().Uint64("index", index).Interface("element", elem).Msg("step")

			index++

			res, err := rf.Step(acc, elem)
			if err != nil {
				logger.Debug().Err(err).Uint64("elements", index).Msg("step failed")
				return res, err
			}

			if res.Terminated() {
				logger.Debug().Uint64("elements", index).Msg("terminated downstream")
			}

			return res, nil
		})

		r.CompleteFunc = func(acc A) (A, error) {
			logger.Debug().Uint64("elements", index).Msg("complete")
			return rf.Complete(acc)
		}

		return r
	}
}

// Error implements error.
func (e *ElementError[T]) Error() string {
	return "element: " + e.Err.Error()
}

// Unwrap returns the error returned by the function.
func (e *ElementError[T]) Unwrap() error {
	return e.Err
}
