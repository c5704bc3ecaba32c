package humthreads

import (
	"sync"
	"sync/atomic"
)

// The process-wide registry of live managed threads. A key is present if
// and only if the owning thread's guard is alive: registration happens
// before the thread function runs, removal on every exit path including
// panic unwinds.
var (
	registryMu sync.Mutex
	registry   = make(map[uint64]*registeredStatus)

	// Thread identities come from a monotonic counter rather than the OS
	// thread id. OS ids are only unique among live threads, so a stale
	// deregister could race a fresh register for a reused id.
	lastThreadID atomic.Uint64
)

// newThreadID returns a process-unique identity for a new managed thread.
func newThreadID() uint64 {
	return lastThreadID.Add(1)
}

// registerThread inserts state information for a newly started thread.
func registerThread(id uint64, status *registeredStatus) {
	registryMu.Lock()
	registry[id] = status
	registryMu.Unlock()
}

// deregisterThread removes state information for the specified thread.
func deregisterThread(id uint64) {
	registryMu.Lock()
	delete(registry, id)
	registryMu.Unlock()
}

// RegisteredThreads returns a snapshot of the status of every managed
// thread currently running.
//
// The snapshot is a point-in-time copy: threads starting, exiting, or
// changing activity after the call do not affect the returned slice.
// Order is unspecified.
func RegisteredThreads() []ThreadStatus {
	registryMu.Lock()
	defer registryMu.Unlock()

	threads := make([]ThreadStatus, 0, len(registry))
	for _, status := range registry {
		threads = append(threads, status.snapshot())
	}
	return threads
}
