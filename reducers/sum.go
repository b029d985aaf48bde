package reducers

import (
	"github.com/go-sif/fold"
	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/internal/util"
)

// SumState is the intermediate of a Sum reducer
type SumState struct {
	sum float64
}

// Sum sums a numeric projection of elements
type Sum[T any] struct {
	value func(T) float64
}

// Summer returns a new Sum reducer which sums value(element)
func Summer[T any](value func(T) float64) (*Sum[T], error) {
	if value == nil {
		return nil, ferrors.InvalidArgumentError{Name: "value function"}
	}
	return &Sum[T]{value: value}, nil
}

// Identity produces a zero SumState
func (s *Sum[T]) Identity() *SumState {
	return &SumState{}
}

// Accumulate adds the value of elem to acc
func (s *Sum[T]) Accumulate(acc *SumState, elem T) error {
	if err := fold.RequireElement(elem); err != nil {
		return err
	}
	v, err := util.SafeValue(s.value, elem)
	if err != nil {
		return ferrors.InvalidArgumentError{Name: "value", Err: err}
	}
	acc.sum += v
	return nil
}

// Merge adds the sum of donor to receiver
func (s *Sum[T]) Merge(receiver, donor *SumState) (*SumState, error) {
	if receiver == donor {
		return nil, ferrors.InvalidArgumentError{Name: "donor", Err: errSelfMerge}
	}
	receiver.sum += donor.sum
	return receiver, nil
}

// Finish returns the sum
func (s *Sum[T]) Finish(acc *SumState) (float64, error) {
	return acc.sum, nil
}

// Characteristics returns fold.Unordered
func (s *Sum[T]) Characteristics() fold.Characteristics {
	return fold.Unordered
}
