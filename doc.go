// Package gotransducers provides composable transformations of reducing functions (transducers).
// A chain of transducers is applied to its source in a single pass, without intermediate collections.
//
// A Reducer folds elements into an accumulator. A Transducer wraps a Reducer into another Reducer:
// Map, Filter, and Take are transducers, as are stateful ones like Chunk, Distinct, or Sort.
// Transducers are combined using Compose, Compose2, etc. The first transducer given sees each element first.
//
// Transduce pulls elements from a Source and passes them through the composed reducer. Any step may
// terminate the fold early by returning a Result created by Terminate, in which case the source is not
// advanced any further. The reducer's Complete is always called exactly once per run.
//
// Transducer values are immutable and reusable. Stateful transducers allocate their state each time they
// are applied to a reducer, so each run gets its own state. A single run is strictly sequential and must not
// be shared between goroutines.
package gotransducers
