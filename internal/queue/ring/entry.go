// Bounded history window shared between one receiver and any number of readers
package ring

import (
	"fmt"
	"mcaststats/internal/global"
)

// Creates a new empty buffer
func New[T any](namespace []string, capacity int) (new *Buffer[T], err error) {
	if capacity < 1 {
		err = fmt.Errorf("capacity must be greater than or equal to 1")
		return
	}

	new = &Buffer[T]{
		Namespace: append(append([]string(nil), namespace...), global.NSQueue),
		buf:       make([]T, capacity),
		Metrics:   &MetricStorage{},
	}
	return
}

// Inserts value as newest entry, evicting the oldest first when at capacity.
// Returns true when an eviction happened.
func (ring *Buffer[T]) Push(value T) (evicted bool) {
	ring.mu.Lock()
	defer ring.mu.Unlock()

	ring.Metrics.Pushes.Add(1)

	capacity := len(ring.buf)
	if ring.size == capacity {
		var zero T
		ring.buf[ring.head] = zero
		ring.head = (ring.head + 1) % capacity
		ring.size--
		evicted = true
		ring.Metrics.Evictions.Add(1)
	}

	ring.buf[(ring.head+ring.size)%capacity] = value
	ring.size++
	return
}

// Copy of current contents, oldest first. Never aliases internal storage.
func (ring *Buffer[T]) Snapshot() (values []T) {
	ring.mu.RLock()
	defer ring.mu.RUnlock()

	ring.Metrics.Snapshots.Add(1)

	values = make([]T, ring.size)
	capacity := len(ring.buf)
	for i := 0; i < ring.size; i++ {
		values[i] = ring.buf[(ring.head+i)%capacity]
	}
	return
}

// Current number of entries
func (ring *Buffer[T]) Len() (size int) {
	ring.mu.RLock()
	size = ring.size
	ring.mu.RUnlock()
	return
}

// Maximum number of entries
func (ring *Buffer[T]) Cap() int {
	return len(ring.buf)
}
