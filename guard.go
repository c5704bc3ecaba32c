package humthreads

// threadGuard ties a thread's presence in the registry to its actual
// lifetime. It is created inside the new thread before the thread function
// runs and released in deferred cleanup, so deregistration happens on
// every exit path, panic unwinds included.
//
// The guard also owns the completion side of the join-check channel. It
// decouples the ThreadScope from the thread's lifecycle: a thread body may
// discard its scope without introspection losing track of the thread.
type threadGuard struct {
	id        uint64
	joinCheck chan struct{}
}

// newThreadGuard registers the thread's status and returns its guard.
func newThreadGuard(id uint64, joinCheck chan struct{}, status *registeredStatus) *threadGuard {
	registerThread(id, status)
	return &threadGuard{
		id:        id,
		joinCheck: joinCheck,
	}
}

// release removes the thread from the registry and signals waiters that it
// is safe to join. Closing the channel is the one-shot completion edge:
// every receive after release completes immediately, so a parent that
// missed the signal on one path still proceeds on the next.
//
// release must be called exactly once, from the owning thread.
func (g *threadGuard) release() {
	deregisterThread(g.id)
	close(g.joinCheck)
}
