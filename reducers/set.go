package reducers

import (
	"maps"

	"github.com/go-sif/fold"
	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/internal/codec"
	"github.com/go-sif/fold/internal/util"
)

// SetState is the intermediate of a SetBuilding reducer
type SetState[T comparable] struct {
	items map[T]struct{}
}

// Len returns the number of unique elements accumulated so far
func (s *SetState[T]) Len() int {
	return len(s.items)
}

type setSnapshot[T comparable] struct {
	Items []T
}

// MarshalBinary serializes this intermediate
func (s *SetState[T]) MarshalBinary() ([]byte, error) {
	snap := setSnapshot[T]{Items: make([]T, 0, len(s.items))}
	for e := range s.items {
		snap.Items = append(snap.Items, e)
	}
	return codec.Compress(snap)
}

// UnmarshalBinary replaces the contents of this intermediate with serialized data
func (s *SetState[T]) UnmarshalBinary(buf []byte) error {
	var snap setSnapshot[T]
	if err := codec.Decompress(buf, &snap); err != nil {
		return err
	}
	s.items = make(map[T]struct{}, len(snap.Items))
	for _, e := range snap.Items {
		s.items[e] = struct{}{}
	}
	return nil
}

// SetBuilding collects the unique elements of a reduction
type SetBuilding[T comparable] struct{}

// ToSet returns a SetBuilding reducer
func ToSet[T comparable]() *SetBuilding[T] {
	return &SetBuilding[T]{}
}

// UnmodifiableSetOf returns a read-only Set of the unique items
func UnmodifiableSetOf[T comparable](items ...T) (*fold.Set[T], error) {
	return fold.Reduce[T, *SetState[T], *fold.Set[T]](ToSet[T](), items...)
}

// Identity produces an empty SetState
func (b *SetBuilding[T]) Identity() *SetState[T] {
	return &SetState[T]{items: make(map[T]struct{})}
}

// Accumulate inserts elem into acc. Duplicates collapse.
// An element which cannot be hashed is an InvalidArgumentError.
func (b *SetBuilding[T]) Accumulate(acc *SetState[T], elem T) error {
	if err := fold.RequireElement(elem); err != nil {
		return err
	}
	if err := util.SafeOperation(func() { acc.items[elem] = struct{}{} }); err != nil {
		return ferrors.InvalidArgumentError{Name: "element", Err: err}
	}
	return nil
}

// Merge adds every member of donor to receiver
func (b *SetBuilding[T]) Merge(receiver, donor *SetState[T]) (*SetState[T], error) {
	if receiver == donor {
		return nil, ferrors.InvalidArgumentError{Name: "donor", Err: errSelfMerge}
	}
	for e := range donor.items {
		receiver.items[e] = struct{}{}
	}
	return receiver, nil
}

// Finish exposes the accumulated elements as a read-only Set
func (b *SetBuilding[T]) Finish(acc *SetState[T]) (*fold.Set[T], error) {
	return fold.WrapSet(maps.Clone(acc.items)), nil
}

// Characteristics returns fold.Unordered
func (b *SetBuilding[T]) Characteristics() fold.Characteristics {
	return fold.Unordered
}
