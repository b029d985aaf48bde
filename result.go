package fold

import (
	"slices"

	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/internal/util"
)

// Set is a read-only, unordered collection of unique elements
type Set[T comparable] struct {
	items map[T]struct{}
}

// WrapSet exposes items as a read-only Set. The Set takes ownership of items,
// which must not be modified afterwards.
func WrapSet[T comparable](items map[T]struct{}) *Set[T] {
	if items == nil {
		items = make(map[T]struct{})
	}
	return &Set[T]{items: items}
}

// Len returns the number of elements in this Set
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Contains returns true iff elem is a member of this Set. An unhashable elem is never a member.
func (s *Set[T]) Contains(elem T) (ok bool) {
	_ = util.SafeOperation(func() { _, ok = s.items[elem] })
	return ok
}

// Items returns the members of this Set, in no particular order
func (s *Set[T]) Items() []T {
	res := make([]T, 0, len(s.items))
	for e := range s.items {
		res = append(res, e)
	}
	return res
}

// Each calls fn on every member of this Set until fn returns false
func (s *Set[T]) Each(fn func(elem T) bool) {
	for e := range s.items {
		if !fn(e) {
			return
		}
	}
}

// Add always fails, since a Set is read-only
func (s *Set[T]) Add(elem T) error {
	return ferrors.UnsupportedOperationError{Op: "Add"}
}

// Remove always fails, since a Set is read-only
func (s *Set[T]) Remove(elem T) error {
	return ferrors.UnsupportedOperationError{Op: "Remove"}
}

// Groups is a read-only, ordered mapping from a key to the elements assigned to it.
// Keys iterate in the order they were first seen.
type Groups[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// WrapGroups exposes groups as a read-only Groups, iterating in the order of keys.
// Every key in groups must appear exactly once in keys. Groups takes ownership of both
// arguments, which must not be modified afterwards.
func WrapGroups[K comparable, T any](keys []K, groups map[K][]T) *Groups[K, T] {
	if groups == nil {
		groups = make(map[K][]T)
	}
	return &Groups[K, T]{keys: keys, groups: groups}
}

// Len returns the number of keys in this mapping
func (g *Groups[K, T]) Len() int {
	return len(g.keys)
}

// Keys returns the keys of this mapping, in first-seen order
func (g *Groups[K, T]) Keys() []K {
	return slices.Clone(g.keys)
}

// Get returns a copy of the elements assigned to key
func (g *Groups[K, T]) Get(key K) ([]T, bool) {
	var group []T
	var ok bool
	_ = util.SafeOperation(func() { group, ok = g.groups[key] })
	if !ok {
		return nil, false
	}
	return slices.Clone(group), true
}

// Each calls fn on every key and group, in key order, until fn returns false
func (g *Groups[K, T]) Each(fn func(key K, group []T) bool) {
	for _, k := range g.keys {
		if !fn(k, slices.Clone(g.groups[k])) {
			return
		}
	}
}

// Put always fails, since Groups is read-only
func (g *Groups[K, T]) Put(key K, group []T) error {
	return ferrors.UnsupportedOperationError{Op: "Put"}
}

// Delete always fails, since Groups is read-only
func (g *Groups[K, T]) Delete(key K) error {
	return ferrors.UnsupportedOperationError{Op: "Delete"}
}

// Pair holds the results of two reducers run over the same elements
type Pair[R1 any, R2 any] struct {
	First  R1
	Second R2
}
