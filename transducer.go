package gotransducers

// Transducer transforms a reducer consuming elements of type U into a reducer consuming elements of type T.
// A is the accumulator type, which a transducer passes through untouched.
//
// Calling a Transducer is one application: any private state a transducer needs is allocated inside
// that call, so the same Transducer value can be used for any number of runs.
type Transducer[A any, T any, U any] func(rf Reducer[U, A]) Reducer[T, A]

// Identity returns a transducer that returns its reducer unchanged.
func Identity[A any, T any]() Transducer[A, T, T] {
	return func(rf Reducer[T, A]) Reducer[T, A] {
		return rf
	}
}

// Compose returns a transducer that applies xfs to each element in the order given, the first
// transducer seeing the element first.
// Compose with no transducers returns Identity.
// Compose panics if any of xfs is nil.
func Compose[A any, T any](xfs ...Transducer[A, T, T]) Transducer[A, T, T] {
	for _, xf := range xfs {
		if xf == nil {
			panic("gotransducers.Compose: nil transducer")
		}
	}

	if len(xfs) == 0 {
		return Identity[A, T]()
	}

	xfs = append([]Transducer[A, T, T](nil), xfs...)

	return func(rf Reducer[T, A]) Reducer[T, A] {
		for i := len(xfs) - 1; i >= 0; i-- {
			rf = xfs[i](rf)
		}

		return rf
	}
}

// Compose2 returns a transducer that applies xf1, then xf2, to each element.
func Compose2[A any, T any, U any, V any](xf1 Transducer[A, T, U], xf2 Transducer[A, U, V]) Transducer[A, T, V] {
	return func(rf Reducer[V, A]) Reducer[T, A] {
		return xf1(xf2(rf))
	}
}

// Compose3 returns a transducer that applies xf1, xf2, then xf3, to each element.
func Compose3[A any, T any, U any, V any, W any](xf1 Transducer[A, T, U], xf2 Transducer[A, U, V],
	xf3 Transducer[A, V, W],
) Transducer[A, T, W] {
	return Compose2(xf1, Compose2(xf2, xf3))
}

// Compose4 returns a transducer that applies xf1, xf2, xf3, then xf4, to each element.
func Compose4[A any, T any, U any, V any, W any, X any](xf1 Transducer[A, T, U], xf2 Transducer[A, U, V],
	xf3 Transducer[A, V, W], xf4 Transducer[A, W, X],
) Transducer[A, T, X] {
	return Compose2(xf1, Compose3(xf2, xf3, xf4))
}
