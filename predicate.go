package gotransducers

// Predicate returns true if elem matches a predicate.
type Predicate[T any] func(elem T) bool

// And returns a predicate that returns true if all of preds return true.
// Predicates are evaluated in order, stopping at the first one that returns false.
// And with no predicates always returns true.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(elem T) bool {
		for _, pred := range preds {
			if !pred(elem) {
				return false
			}
		}

		return true
	}
}

// Or returns a predicate that returns true if any of preds returns true.
// Predicates are evaluated in order, stopping at the first one that returns true.
// Or with no predicates always returns false.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	return func(elem T) bool {
		for _, pred := range preds {
			if pred(elem) {
				return true
			}
		}

		return false
	}
}

// Not returns a predicate that negates pred.
func Not[T any](pred Predicate[T]) Predicate[T] {
	return func(elem T) bool {
		return !pred(elem)
	}
}
