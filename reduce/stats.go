package reduce

import (
	"sync"
	"time"
)

// RunStatistics contains statistics about a parallel reduction. It is filled in
// by the reduction it is handed to, and is safe to read concurrently.
type RunStatistics struct {
	lock                  sync.Mutex
	started               bool
	finished              bool
	startTime             time.Time
	totalRuntime          time.Duration
	elementsAccumulated   int64
	partitionsAccumulated int64
	partitionRuntimes     []time.Duration // indexed by partition
	mergeRuntime          time.Duration
}

// start resets and triggers statistics tracking
func (rs *RunStatistics) start(numPartitions int) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.started = true
	rs.finished = false
	rs.startTime = time.Now()
	rs.totalRuntime = 0
	rs.elementsAccumulated = 0
	rs.partitionsAccumulated = 0
	rs.partitionRuntimes = make([]time.Duration, numPartitions)
	rs.mergeRuntime = 0
}

// endPartition tracks the end of the accumulation of a partition
func (rs *RunStatistics) endPartition(pidx int, numElements int, runtime time.Duration) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.partitionRuntimes[pidx] = runtime
	rs.elementsAccumulated += int64(numElements)
	rs.partitionsAccumulated++
}

// endMerge tracks the end of the merge phase
func (rs *RunStatistics) endMerge(runtime time.Duration) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.mergeRuntime = runtime
}

// finish completes statistics tracking
func (rs *RunStatistics) finish() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.totalRuntime = time.Since(rs.startTime)
	rs.finished = true
}

// GetStartTime returns the start time of the reduction
func (rs *RunStatistics) GetStartTime() time.Time {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.startTime
}

// GetRuntime returns the running time of the reduction
func (rs *RunStatistics) GetRuntime() time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if rs.finished {
		return rs.totalRuntime
	}
	return time.Since(rs.startTime)
}

// IsStarted returns true iff a reduction has started filling in these statistics
func (rs *RunStatistics) IsStarted() bool {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.started
}

// IsFinished returns true iff the reduction has finished, successfully or not
func (rs *RunStatistics) IsFinished() bool {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.finished
}

// GetNumElementsAccumulated returns the number of elements accumulated so far
func (rs *RunStatistics) GetNumElementsAccumulated() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.elementsAccumulated
}

// GetNumPartitionsAccumulated returns the number of partitions fully accumulated so far
func (rs *RunStatistics) GetNumPartitionsAccumulated() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.partitionsAccumulated
}

// GetPartitionRuntimes returns the accumulation time of each partition
func (rs *RunStatistics) GetPartitionRuntimes() []time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	res := make([]time.Duration, len(rs.partitionRuntimes))
	copy(res, rs.partitionRuntimes)
	return res
}

// GetMergeRuntime returns the time spent merging partitions
func (rs *RunStatistics) GetMergeRuntime() time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.mergeRuntime
}
