package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Keys   []string
	Values [][]int
}

func TestRoundTrip(t *testing.T) {
	in := sample{Keys: []string{"a", "b"}, Values: [][]int{{1, 2}, {3}}}
	buf, err := Compress(in)
	require.Nil(t, err)
	require.NotEmpty(t, buf)

	var out sample
	require.Nil(t, Decompress(buf, &out))
	require.Equal(t, in, out)
}

func TestDecompressGarbage(t *testing.T) {
	var out sample
	require.NotNil(t, Decompress([]byte("definitely not lz4"), &out))
}
