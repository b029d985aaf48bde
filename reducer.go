package fold

import (
	"strings"
)

// Characteristics describe the algebraic properties a Reducer declares
type Characteristics uint8

const (
	// Concurrent indicates that Accumulate may be called concurrently on the same intermediate
	Concurrent Characteristics = 1 << iota
	// Unordered indicates that the result does not preserve element encounter order
	Unordered
	// IdentityFinish indicates that Finish returns the intermediate itself
	IdentityFinish
)

// Has returns true iff all of the given characteristics are present
func (c Characteristics) Has(o Characteristics) bool {
	return c&o == o
}

// String returns a textual representation of these Characteristics
func (c Characteristics) String() string {
	names := make([]string, 0, 3)
	if c.Has(Concurrent) {
		names = append(names, "CONCURRENT")
	}
	if c.Has(Unordered) {
		names = append(names, "UNORDERED")
	}
	if c.Has(IdentityFinish) {
		names = append(names, "IDENTITY_FINISH")
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// A Reducer describes how to fold elements of type T into a result of type R, by way
// of a mutable intermediate of type A. A Reducer is an immutable descriptor which may
// be shared freely; all mutable state lives in the intermediates it produces.
//
// Each intermediate belongs to one worker at a time, unless the Reducer declares
// Concurrent. Merge consumes the donor, which must not be used afterwards. Finish is
// called once, on a fully merged intermediate.
type Reducer[T any, A any, R any] interface {
	Identity() A                        // Identity produces a fresh, empty intermediate
	Accumulate(acc A, elem T) error     // Accumulate incorporates one element into acc
	Merge(receiver, donor A) (A, error) // Merge combines donor into receiver
	Finish(acc A) (R, error)            // Finish produces the public result from acc
	Characteristics() Characteristics   // Characteristics returns the declared properties of this Reducer
}

// Reduce folds elems sequentially into a single intermediate and finishes it
func Reduce[T any, A any, R any](r Reducer[T, A, R], elems ...T) (R, error) {
	acc := r.Identity()
	for _, e := range elems {
		if err := r.Accumulate(acc, e); err != nil {
			var zero R
			return zero, err
		}
	}
	return r.Finish(acc)
}
