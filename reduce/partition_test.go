package reduce

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitContiguous(t *testing.T) {
	parts, err := splitContiguous(numbers(10), 4)
	require.Nil(t, err)
	require.Len(t, parts, 4)
	require.Equal(t, []int{0, 1, 2}, parts[0].elems)
	require.Equal(t, []int{9}, parts[3].elems)
	joined := make([]int, 0)
	for _, p := range parts {
		require.NotEqual(t, parts[0].id.String(), "")
		joined = append(joined, p.elems...)
	}
	require.Equal(t, numbers(10), joined)

	parts, err = splitContiguous(numbers(2), 5)
	require.Nil(t, err)
	require.Len(t, parts, 2)

	parts, err = splitContiguous([]int{}, 3)
	require.Nil(t, err)
	require.Len(t, parts, 0)
}

func TestSplitHashed(t *testing.T) {
	elems := numbers(100)
	key := func(i int) string { return strconv.Itoa(i % 7) }
	parts, err := splitHashed(elems, 3, key)
	require.Nil(t, err)
	require.Len(t, parts, 3)
	owner := make(map[string]int)
	total := 0
	for i, p := range parts {
		last := -1
		for _, e := range p.elems {
			// encounter order is preserved within a partition
			require.Greater(t, e, last)
			last = e
			k := key(e)
			if o, ok := owner[k]; ok {
				require.Equal(t, o, i)
			}
			owner[k] = i
		}
		total += len(p.elems)
	}
	require.Equal(t, 100, total)
}

func TestComputeBuckets(t *testing.T) {
	buckets := computeBuckets(4)
	require.Len(t, buckets, 4)
	for i := 1; i < len(buckets); i++ {
		require.Greater(t, buckets[i], buckets[i-1])
	}
	require.Equal(t, uint64(math.MaxUint64), buckets[3])
	require.Equal(t, []uint64{math.MaxUint64}, computeBuckets(1))
}
