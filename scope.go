package humthreads

import "sync/atomic"

// ThreadScope is the handle a managed thread has on itself.
//
// Every thread function receives a scope as its argument. The scope checks
// for shutdown requests from the parent-side handle and reports the
// thread's current activity to the introspection API. A scope is meant to
// be used only from within the thread that owns it.
type ThreadScope struct {
	activity *activityCell
	shutdown *atomic.Bool
}

// ShouldShutdown reports whether the parent side requested this thread to
// stop. Non-blocking; the request is advisory and never forces termination.
func (s *ThreadScope) ShouldShutdown() bool {
	return s.shutdown.Load()
}

// Activity reports the thread's current activity.
//
// The text becomes visible through [RegisteredThreads]. The main use case
// is to help end users monitor, debug, and understand complex software
// they operate but did not implement.
func (s *ThreadScope) Activity(activity string) {
	s.activity.set(activity)
}

// Idle clears any previously reported activity.
func (s *ThreadScope) Idle() {
	s.activity.set("")
}

// ScopedActivity reports the given activity for the duration of a scope.
//
// The returned guard captures whatever was reported before; calling
// [ActivityGuard.Done] restores that value exactly, including restoring
// "no activity". Guards nest to arbitrary depth as long as they are
// released in reverse creation order.
func (s *ThreadScope) ScopedActivity(activity string) *ActivityGuard {
	previous := s.activity.swap(activity)
	return &ActivityGuard{
		activity: s.activity,
		previous: previous,
	}
}

// ActivityGuard is a scoped-activity token returned by
// [ThreadScope.ScopedActivity].
//
// Each guard closes over exactly the one value it displaced, so nesting
// needs no real stack: releasing a guard restores the activity that was
// current immediately before it was created.
type ActivityGuard struct {
	activity *activityCell
	previous string
	done     bool
}

// Done restores the activity that was reported when the guard was created.
// Calling Done more than once has no further effect.
func (g *ActivityGuard) Done() {
	if g.done {
		return
	}
	g.done = true
	g.activity.set(g.previous)
}
