package ring

import (
	"sync"
	"sync/atomic"
)

// Fixed capacity FIFO that overwrites its oldest entry when full.
// All mutation happens under mu so the bound holds for any number of producers.
type Buffer[T any] struct {
	Namespace []string
	mu        sync.RWMutex
	buf       []T
	head      int // index of oldest entry
	size      int
	Metrics   *MetricStorage
}

type MetricStorage struct {
	Pushes    atomic.Uint64 // every Push call
	Evictions atomic.Uint64 // oldest entry dropped to make room
	Snapshots atomic.Uint64 // Snapshot calls
}
