package reduce

import (
	"testing"

	"github.com/go-sif/fold/logging"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions()
	require.Nil(t, err)
	require.Equal(t, 4, opts.NumPartitions)
	require.EqualValues(t, 0, opts.MaxConcurrency)
	require.False(t, opts.SharedIntermediate)
}

func TestLoadOptionsFromEnv(t *testing.T) {
	t.Setenv("FOLD_NUM_PARTITIONS", "16")
	t.Setenv("FOLD_MAX_CONCURRENCY", "3")
	t.Setenv("FOLD_SHARED_INTERMEDIATE", "true")
	opts, err := LoadOptions()
	require.Nil(t, err)
	require.Equal(t, 16, opts.NumPartitions)
	require.EqualValues(t, 3, opts.MaxConcurrency)
	require.True(t, opts.SharedIntermediate)
}

func TestLoadOptionsInvalid(t *testing.T) {
	t.Setenv("FOLD_NUM_PARTITIONS", "many")
	_, err := LoadOptions()
	require.NotNil(t, err)
}

func TestWithDefaults(t *testing.T) {
	opts := withDefaults(nil)
	require.Equal(t, 1, opts.NumPartitions)
	require.EqualValues(t, 1, opts.MaxConcurrency)
	require.Equal(t, logging.Discard, opts.Logger)

	in := &Options{NumPartitions: 3, MaxConcurrency: 10}
	opts = withDefaults(in)
	require.EqualValues(t, 3, opts.MaxConcurrency)
	require.EqualValues(t, 10, in.MaxConcurrency)
}
