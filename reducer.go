package gotransducers

// Result is the value returned by a reducer's step: either the next accumulator, or the final accumulator
// together with a signal that the fold must stop.
type Result[A any] struct {
	acc        A
	terminated bool
}

// Reducer is a reducing function folding elements of type T into an accumulator of type A.
type Reducer[T any, A any] interface {
	// Init returns the initial accumulator, used when the caller does not supply one.
	Init() A

	// Step folds elem into acc.
	// Once Step returns a terminated Result, no further Step calls are issued for the run.
	Step(acc A, elem T) (Result[A], error)

	// Complete is called exactly once per run with the final accumulator.
	// Stateful reducers use it to flush buffered elements.
	Complete(acc A) (A, error)
}

// Halter is implemented by reducers that can report, before the next element is pulled,
// that they will not accept any more elements.
type Halter interface {
	Halted() bool
}

// ReducerFuncs is a Reducer made of plain functions.
// A nil InitFunc returns the zero value, a nil CompleteFunc returns its accumulator unchanged,
// and a nil HaltedFunc never halts.
type ReducerFuncs[T any, A any] struct {
	InitFunc     func() A
	StepFunc     func(acc A, elem T) (Result[A], error)
	CompleteFunc func(acc A) (A, error)
	HaltedFunc   func() bool
}

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, elem T) A

// Continue returns a Result that carries acc and lets the fold continue.
func Continue[A any](acc A) Result[A] {
	return Result[A]{acc: acc}
}

// Terminate returns a Result that carries acc as the final accumulator and stops the fold.
func Terminate[A any](acc A) Result[A] {
	return Result[A]{
		acc:        acc,
		terminated: true,
	}
}

// Value returns the accumulator carried by r.
func (r Result[A]) Value() A {
	return r.acc
}

// Terminated returns true if r signals that the fold must stop.
func (r Result[A]) Terminated() bool {
	return r.terminated
}

// Accumulate returns a reducer that starts from init and calls acc for each element.
// The reducer never terminates early and never fails.
func Accumulate[T any, A any](init func() A, acc AccumulatorFunc[T, A]) Reducer[T, A] {
	return &ReducerFuncs[T, A]{
		InitFunc: init,
		StepFunc: func(a A, elem T) (Result[A], error) {
			return Continue(acc(a, elem)), nil
		},
	}
}

// Halted returns true if rf implements Halter and reports that it is halted.
func Halted[T any, A any](rf Reducer[T, A]) bool {
	h, ok := rf.(Halter)
	return ok && h.Halted()
}

// Init implements Reducer.
func (r *ReducerFuncs[T, A]) Init() A {
	if r.InitFunc == nil {
		var zero A
		return zero
	}

	return r.InitFunc()
}

// Step implements Reducer.
func (r *ReducerFuncs[T, A]) Step(acc A, elem T) (Result[A], error) {
	return r.StepFunc(acc, elem)
}

// Complete implements Reducer.
func (r *ReducerFuncs[T, A]) Complete(acc A) (A, error) {
	if r.CompleteFunc == nil {
		return acc, nil
	}

	return r.CompleteFunc(acc)
}

// Halted implements Halter.
func (r *ReducerFuncs[T, A]) Halted() bool {
	return r.HaltedFunc != nil && r.HaltedFunc()
}

// wrap returns a reducer consuming T that calls step for each element and delegates
// everything else to the downstream reducer rf.
func wrap[A any, T any, U any](rf Reducer[U, A], step func(acc A, elem T) (Result[A], error)) *ReducerFuncs[T, A] {
	return &ReducerFuncs[T, A]{
		InitFunc:     rf.Init,
		StepFunc:     step,
		CompleteFunc: rf.Complete,
		HaltedFunc: func() bool {
			return Halted(rf)
		},
	}
}
