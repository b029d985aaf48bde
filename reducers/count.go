package reducers

import (
	"github.com/go-sif/fold"
	ferrors "github.com/go-sif/fold/errors"
)

// CountState is the intermediate of a Count reducer
type CountState struct {
	count uint64
}

// Count counts elements
type Count[T any] struct{}

// Counter returns a new Count reducer
func Counter[T any]() *Count[T] {
	return &Count[T]{}
}

// Identity produces a zero CountState
func (c *Count[T]) Identity() *CountState {
	return &CountState{}
}

// Accumulate counts one element
func (c *Count[T]) Accumulate(acc *CountState, elem T) error {
	if err := fold.RequireElement(elem); err != nil {
		return err
	}
	acc.count++
	return nil
}

// Merge adds the count of donor to receiver
func (c *Count[T]) Merge(receiver, donor *CountState) (*CountState, error) {
	if receiver == donor {
		return nil, ferrors.InvalidArgumentError{Name: "donor", Err: errSelfMerge}
	}
	receiver.count += donor.count
	return receiver, nil
}

// Finish returns the element count
func (c *Count[T]) Finish(acc *CountState) (uint64, error) {
	return acc.count, nil
}

// Characteristics returns fold.Unordered
func (c *Count[T]) Characteristics() fold.Characteristics {
	return fold.Unordered
}
