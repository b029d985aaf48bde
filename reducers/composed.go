package reducers

import (
	"github.com/go-sif/fold"
	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/internal/util"
)

// ComposedState is the intermediate of a Composed reducer
type ComposedState[A1 any, A2 any] struct {
	First  A1
	Second A2
}

// Composed runs two reducers over the same elements
type Composed[T any, A1 any, R1 any, A2 any, R2 any] struct {
	first  fold.Reducer[T, A1, R1]
	second fold.Reducer[T, A2, R2]
}

// Compose returns a new Composed reducer
func Compose[T any, A1 any, R1 any, A2 any, R2 any](first fold.Reducer[T, A1, R1], second fold.Reducer[T, A2, R2]) (*Composed[T, A1, R1, A2, R2], error) {
	if util.IsNil(first) {
		return nil, ferrors.InvalidArgumentError{Name: "first reducer"}
	}
	if util.IsNil(second) {
		return nil, ferrors.InvalidArgumentError{Name: "second reducer"}
	}
	return &Composed[T, A1, R1, A2, R2]{first: first, second: second}, nil
}

// Identity produces a ComposedState holding an identity of each reducer
func (c *Composed[T, A1, R1, A2, R2]) Identity() *ComposedState[A1, A2] {
	return &ComposedState[A1, A2]{First: c.first.Identity(), Second: c.second.Identity()}
}

// Accumulate adds elem to both contained intermediates
func (c *Composed[T, A1, R1, A2, R2]) Accumulate(acc *ComposedState[A1, A2], elem T) error {
	if err := c.first.Accumulate(acc.First, elem); err != nil {
		return err
	}
	return c.second.Accumulate(acc.Second, elem)
}

// Merge merges both contained intermediates of donor into receiver
func (c *Composed[T, A1, R1, A2, R2]) Merge(receiver, donor *ComposedState[A1, A2]) (*ComposedState[A1, A2], error) {
	if receiver == donor {
		return nil, ferrors.InvalidArgumentError{Name: "donor", Err: errSelfMerge}
	}
	first, err := c.first.Merge(receiver.First, donor.First)
	if err != nil {
		return nil, err
	}
	second, err := c.second.Merge(receiver.Second, donor.Second)
	if err != nil {
		return nil, err
	}
	receiver.First = first
	receiver.Second = second
	return receiver, nil
}

// Finish finishes both contained intermediates
func (c *Composed[T, A1, R1, A2, R2]) Finish(acc *ComposedState[A1, A2]) (fold.Pair[R1, R2], error) {
	var res fold.Pair[R1, R2]
	first, err := c.first.Finish(acc.First)
	if err != nil {
		return res, err
	}
	second, err := c.second.Finish(acc.Second)
	if err != nil {
		return res, err
	}
	res.First = first
	res.Second = second
	return res, nil
}

// Characteristics returns the characteristics shared by both reducers, except fold.IdentityFinish
func (c *Composed[T, A1, R1, A2, R2]) Characteristics() fold.Characteristics {
	return (c.first.Characteristics() & c.second.Characteristics()) &^ fold.IdentityFinish
}
