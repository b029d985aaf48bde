package reducers

import (
	"slices"

	"github.com/go-sif/fold"
	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/internal/codec"
	"github.com/go-sif/fold/internal/util"
)

// GroupState is the intermediate of a Grouping reducer: the elements seen for each key,
// and the keys in the order they were first seen
type GroupState[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// Len returns the number of keys seen so far
func (g *GroupState[K, T]) Len() int {
	return len(g.keys)
}

type groupSnapshot[K comparable, T any] struct {
	Keys   []K
	Groups [][]T
}

// MarshalBinary serializes this intermediate
func (g *GroupState[K, T]) MarshalBinary() ([]byte, error) {
	snap := groupSnapshot[K, T]{Keys: g.keys, Groups: make([][]T, len(g.keys))}
	for i, k := range g.keys {
		snap.Groups[i] = g.groups[k]
	}
	return codec.Compress(snap)
}

// UnmarshalBinary replaces the contents of this intermediate with serialized data
func (g *GroupState[K, T]) UnmarshalBinary(buf []byte) error {
	var snap groupSnapshot[K, T]
	if err := codec.Decompress(buf, &snap); err != nil {
		return err
	}
	if len(snap.Keys) != len(snap.Groups) {
		return ferrors.IncompatibleIntermediateError{Expected: "group snapshot"}
	}
	g.keys = make([]K, 0, len(snap.Keys))
	g.groups = make(map[K][]T, len(snap.Keys))
	for i, k := range snap.Keys {
		g.keys = append(g.keys, k)
		g.groups[k] = snap.Groups[i]
	}
	return nil
}

// Grouping partitions elements by a derived key, preserving encounter order within each key
type Grouping[T any, K comparable] struct {
	keyFn func(T) (K, error)
}

// GroupBy returns a Grouping reducer which assigns each element to keyFn(element)
func GroupBy[T any, K comparable](keyFn func(T) K) (*Grouping[T, K], error) {
	if keyFn == nil {
		return nil, ferrors.InvalidArgumentError{Name: "key function"}
	}
	return &Grouping[T, K]{keyFn: func(elem T) (K, error) {
		return keyFn(elem), nil
	}}, nil
}

// GroupByE returns a Grouping reducer with a key function which may fail
func GroupByE[T any, K comparable](keyFn func(T) (K, error)) (*Grouping[T, K], error) {
	if keyFn == nil {
		return nil, ferrors.InvalidArgumentError{Name: "key function"}
	}
	return &Grouping[T, K]{keyFn: keyFn}, nil
}

// Identity produces an empty GroupState
func (g *Grouping[T, K]) Identity() *GroupState[K, T] {
	return &GroupState[K, T]{keys: make([]K, 0), groups: make(map[K][]T)}
}

// Accumulate appends elem to the group for its key, creating the group if necessary
func (g *Grouping[T, K]) Accumulate(acc *GroupState[K, T], elem T) error {
	if err := fold.RequireElement(elem); err != nil {
		return err
	}
	key, err := util.SafeKey(g.keyFn, elem)
	if err != nil {
		return ferrors.InvalidArgumentError{Name: "key", Err: err}
	}
	err = util.SafeOperation(func() {
		group, ok := acc.groups[key]
		acc.groups[key] = append(group, elem)
		if !ok {
			acc.keys = append(acc.keys, key)
		}
	})
	if err != nil {
		return ferrors.InvalidArgumentError{Name: "key", Err: err}
	}
	return nil
}

// Merge appends each group of donor after the group of receiver with the same key.
// Keys only present in donor follow the keys of receiver.
func (g *Grouping[T, K]) Merge(receiver, donor *GroupState[K, T]) (*GroupState[K, T], error) {
	if receiver == donor {
		return nil, ferrors.InvalidArgumentError{Name: "donor", Err: errSelfMerge}
	}
	for _, k := range donor.keys {
		group, ok := receiver.groups[k]
		if !ok {
			receiver.keys = append(receiver.keys, k)
		}
		receiver.groups[k] = append(group, donor.groups[k]...)
	}
	return receiver, nil
}

// Finish exposes the groups as a read-only, ordered mapping. It never returns nil.
func (g *Grouping[T, K]) Finish(acc *GroupState[K, T]) (*fold.Groups[K, T], error) {
	groups := make(map[K][]T, len(acc.groups))
	for k, group := range acc.groups {
		groups[k] = slices.Clone(group)
	}
	return fold.WrapGroups(slices.Clone(acc.keys), groups), nil
}

// Characteristics returns no characteristics: per-key order is preserved
func (g *Grouping[T, K]) Characteristics() fold.Characteristics {
	return 0
}
