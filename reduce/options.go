package reduce

import (
	"github.com/caarlos0/env/v6"
	"github.com/go-sif/fold/logging"
)

// Options configure a parallel reduction
type Options struct {
	NumPartitions      int            `env:"FOLD_NUM_PARTITIONS" envDefault:"4"`  // the number of partitions to split elements into
	MaxConcurrency     int64          `env:"FOLD_MAX_CONCURRENCY" envDefault:"0"` // the maximum number of partitions accumulated at once (0 means NumPartitions)
	SharedIntermediate bool           `env:"FOLD_SHARED_INTERMEDIATE"`            // iff true, all partitions accumulate into one intermediate (fold.Concurrent reducers only)
	// Logger receives progress and failure messages (nil means logging.Discard)
	Logger             logging.Logger
	// Stats, if non-nil, is filled in with statistics about the reduction
	Stats              *RunStatistics
}

// LoadOptions reads Options from the environment
func LoadOptions() (*Options, error) {
	opts := &Options{}
	if err := env.Parse(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// CloneOptions makes a copy of an Options
func CloneOptions(opts *Options) *Options {
	return &Options{
		NumPartitions:      opts.NumPartitions,
		MaxConcurrency:     opts.MaxConcurrency,
		SharedIntermediate: opts.SharedIntermediate,
		Logger:             opts.Logger,
		Stats:              opts.Stats,
	}
}

// withDefaults returns a copy of opts with unset fields filled in
func withDefaults(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}
	res := CloneOptions(opts)
	if res.NumPartitions < 1 {
		res.NumPartitions = 1
	}
	if res.MaxConcurrency < 1 || res.MaxConcurrency > int64(res.NumPartitions) {
		res.MaxConcurrency = int64(res.NumPartitions)
	}
	if res.Logger == nil {
		res.Logger = logging.Discard
	}
	if res.Stats == nil {
		res.Stats = &RunStatistics{}
	}
	return res
}
