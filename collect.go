package gotransducers

import "golang.org/x/exp/constraints"

// A DuplicateKeyError is returned by a reducer created by CollectMapNoDuplicateKeys to indicate that
// a key could not be added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// Collect returns a reducer that collects elements into a slice.
func Collect[T any]() Reducer[T, []T] {
	return Accumulate(func() []T {
		return []T{}
	}, func(acc []T, elem T) []T {
		return append(acc, elem)
	})
}

// CollectMap returns a reducer that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key Function[T, K], value Function[T, V]) Reducer[T, map[K]V] {
	return Accumulate(newMap[K, V], func(acc map[K]V, elem T) map[K]V {
		if acc == nil {
			acc = map[K]V{}
		}

		acc[key(elem)] = value(elem)

		return acc
	})
}

// CollectMapNoDuplicateKeys returns a reducer that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the run fails with a *DuplicateKeyError.
func CollectMapNoDuplicateKeys[T any, K comparable, V any](key Function[T, K], value Function[T, V]) Reducer[T, map[K]V] {
	return &ReducerFuncs[T, map[K]V]{
		InitFunc: newMap[K, V],
		StepFunc: func(acc map[K]V, elem T) (Result[map[K]V], error) {
			if acc == nil {
				acc = map[K]V{}
			}

			key := key(elem)

			if _, ok := acc[key]; ok {
				return Result[map[K]V]{}, &DuplicateKeyError[T, K]{
					Element: elem,
					Key:     key,
				}
			}

			acc[key] = value(elem)

			return Continue(acc), nil
		},
	}
}

// CollectGroup returns a reducer that collects elements into a group map.
// Elements will be grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](key Function[T, K], value Function[T, V]) Reducer[T, map[K][]V] {
	return Accumulate(newMap[K, []V], func(acc map[K][]V, elem T) map[K][]V {
		if acc == nil {
			acc = map[K][]V{}
		}

		key := key(elem)
		acc[key] = append(acc[key], value(elem))

		return acc
	})
}

// CollectPartition returns a reducer that collects elements into a partition map.
// Elements will be grouped into slices according to pred.
func CollectPartition[T any, V any](pred Predicate[T], value Function[T, V]) Reducer[T, map[bool][]V] {
	return CollectGroup(Function[T, bool](pred), value)
}

// Sum returns a reducer that adds up all elements.
func Sum[T constraints.Integer | constraints.Float]() Reducer[T, T] {
	return Accumulate(nil, func(acc T, elem T) T {
		return acc + elem
	})
}

// Counter returns a reducer that counts elements.
func Counter[T any]() Reducer[T, uint64] {
	return Accumulate(nil, func(acc uint64, _ T) uint64 {
		return acc + 1
	})
}

// First returns a reducer that keeps a pointer to the first element and terminates the fold.
// The accumulator stays nil if there are no elements.
func First[T any]() Reducer[T, *T] {
	return &ReducerFuncs[T, *T]{
		StepFunc: func(_ *T, elem T) (Result[*T], error) {
			return Terminate(&elem), nil
		},
	}
}

func newMap[K comparable, V any]() map[K]V {
	return map[K]V{}
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}
