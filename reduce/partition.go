package reduce

import (
	"fmt"
	"math"
	"sort"

	xxhash "github.com/cespare/xxhash/v2"
	uuid "github.com/gofrs/uuid"
)

// partition is the slice of elements accumulated by one worker
type partition[T any] struct {
	id    uuid.UUID
	elems []T
}

func newPartitions[T any](n int) ([]*partition[T], error) {
	parts := make([]*partition[T], n)
	for i := range parts {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("failed to generate UUID: %w", err)
		}
		parts[i] = &partition[T]{id: id, elems: make([]T, 0)}
	}
	return parts, nil
}

// splitContiguous assigns elems to at most n partitions of consecutive elements, in order
func splitContiguous[T any](elems []T, n int) ([]*partition[T], error) {
	if len(elems) < n {
		n = len(elems)
	}
	parts, err := newPartitions[T](n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return parts, nil
	}
	size := (len(elems) + n - 1) / n
	for i, p := range parts {
		start := i * size
		end := start + size
		if start > len(elems) {
			start = len(elems)
		}
		if end > len(elems) {
			end = len(elems)
		}
		p.elems = elems[start:end]
	}
	return parts, nil
}

// splitHashed assigns each element to the partition owning the xxhash of its key.
// Elements sharing a key always land in the same partition, in encounter order.
func splitHashed[T any](elems []T, n int, key func(T) string) ([]*partition[T], error) {
	parts, err := newPartitions[T](n)
	if err != nil {
		return nil, err
	}
	buckets := computeBuckets(n)
	for _, e := range elems {
		h := xxhash.Sum64String(key(e))
		i := sort.Search(len(buckets), func(i int) bool { return h <= buckets[i] })
		parts[i].elems = append(parts[i].elems, e)
	}
	return parts, nil
}

// Assigns a maximum hash to each partition (in ascending order). A partition owns hashes
// less than or equal to its maximum and greater than the previous partition's maximum.
func computeBuckets(n int) []uint64 {
	buckets := make([]uint64, n)
	interval := uint64(math.MaxUint64) / uint64(n)
	for i := range buckets {
		buckets[i] = uint64(i+1) * interval
	}
	// this compensates for rounding errors, but makes
	// the last bucket a bit bigger than the others
	buckets[len(buckets)-1] = uint64(math.MaxUint64)
	return buckets
}
