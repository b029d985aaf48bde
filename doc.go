// Package fold contains the core components of Fold, a framework for mutable reductions.
// A Reducer folds a sequence of elements into one result through an intermediate value,
// and partial intermediates built independently (e.g. by parallel workers) can be merged
// before the result is finished. This root package defines the reduction protocol and the
// read-only result types; concrete reducers live in the reducers package, and a reference
// driver which splits work across goroutines lives in the reduce package.
package fold
