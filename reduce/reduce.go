package reduce

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-sif/fold"
	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/internal/util"
	"github.com/go-sif/fold/logging"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Parallel splits elems into contiguous partitions, accumulates each partition on its
// own goroutine, merges the partitions in order and finishes the result once.
// For a reducer which preserves order, the result equals a sequential reduction.
func Parallel[T any, A any, R any](ctx context.Context, r fold.Reducer[T, A, R], elems []T, opts *Options) (R, error) {
	var zero R
	opts = withDefaults(opts)
	parts, err := splitContiguous(elems, opts.NumPartitions)
	if err != nil {
		return zero, err
	}
	return run(ctx, r, parts, opts)
}

// ParallelByKey behaves like Parallel, but routes each element to a partition by the
// hash of key(element), so elements sharing a key are accumulated by the same worker.
func ParallelByKey[T any, A any, R any](ctx context.Context, r fold.Reducer[T, A, R], elems []T, key func(T) string, opts *Options) (R, error) {
	var zero R
	if key == nil {
		return zero, ferrors.InvalidArgumentError{Name: "partition key"}
	}
	opts = withDefaults(opts)
	parts, err := splitHashed(elems, opts.NumPartitions, key)
	if err != nil {
		return zero, err
	}
	return run(ctx, r, parts, opts)
}

func run[T any, A any, R any](ctx context.Context, r fold.Reducer[T, A, R], parts []*partition[T], opts *Options) (R, error) {
	var zero R
	if util.IsNil(r) {
		return zero, ferrors.InvalidArgumentError{Name: "reducer"}
	}
	if opts.SharedIntermediate && !r.Characteristics().Has(fold.Concurrent) {
		return zero, ferrors.InvalidArgumentError{
			Name: "SharedIntermediate",
			Err:  fmt.Errorf("reducer characteristics %s do not include CONCURRENT", r.Characteristics()),
		}
	}
	logger := opts.Logger
	stats := opts.Stats
	stats.start(len(parts))
	defer stats.finish()

	var shared A
	if opts.SharedIntermediate {
		shared = r.Identity()
	}
	accs := make([]A, len(parts))
	var errsLock sync.Mutex
	var errs *multierror.Error
	fail := func(err error) {
		errsLock.Lock()
		defer errsLock.Unlock()
		errs = multierror.Append(errs, err)
	}

	var g errgroup.Group
	limit := semaphore.NewWeighted(opts.MaxConcurrency)
	for i, p := range parts {
		if err := limit.Acquire(ctx, 1); err != nil {
			fail(err)
			break
		}
		i, p := i, p
		g.Go(func() error {
			defer limit.Release(1)
			started := time.Now()
			acc := shared
			if !opts.SharedIntermediate {
				acc = r.Identity()
			}
			for _, e := range p.elems {
				if err := ctx.Err(); err != nil {
					fail(fmt.Errorf("partition %s: %w", p.id, err))
					return err
				}
				if err := accumulate(r, acc, e); err != nil {
					fail(fmt.Errorf("partition %s: %w", p.id, err))
					return err
				}
			}
			accs[i] = acc
			stats.endPartition(i, len(p.elems), time.Since(started))
			logger.Logf(logging.DebugLevel, "Accumulated %d elements into partition %s", len(p.elems), p.id)
			return nil
		})
	}
	_ = g.Wait()
	if errs != nil {
		logger.Logf(logging.ErrorLevel, "Reduction failed:\n%s", util.FormatMultiError(errs.Errors))
		return zero, errs.ErrorOrNil()
	}

	mergeStarted := time.Now()
	acc, err := mergeAll(r, shared, accs, opts.SharedIntermediate)
	if err != nil {
		return zero, err
	}
	stats.endMerge(time.Since(mergeStarted))
	logger.Logf(logging.DebugLevel, "Merged %d partitions", len(parts))
	return r.Finish(acc)
}

// accumulate calls r.Accumulate on a worker goroutine. A panic becomes an error.
func accumulate[T any, A any, R any](r fold.Reducer[T, A, R], acc A, elem T) (err error) {
	if perr := util.SafeOperation(func() { err = r.Accumulate(acc, elem) }); perr != nil {
		return perr
	}
	return err
}

// mergeAll merges accs into accs[0] in partition order
func mergeAll[T any, A any, R any](r fold.Reducer[T, A, R], shared A, accs []A, isShared bool) (A, error) {
	if isShared {
		return shared, nil
	}
	if len(accs) == 0 {
		return r.Identity(), nil
	}
	acc := accs[0]
	for _, donor := range accs[1:] {
		merged, err := r.Merge(acc, donor)
		if err != nil {
			var zero A
			return zero, err
		}
		acc = merged
	}
	return acc, nil
}
