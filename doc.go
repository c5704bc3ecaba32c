// Package humthreads provides managed threads for Go: OS-pinned worker
// threads with cooperative shutdown, live introspection, and flexible
// join semantics.
//
// A managed thread is one goroutine locked to a dedicated OS thread for its
// entire lifetime. Compared to a bare `go` statement, spawning through this
// package adds three capabilities:
//
//   - Shutdown requests: the parent-side handle can signal the thread it
//     should stop (the thread body may ignore this, it is advisory only).
//   - Introspection: a process-wide snapshot lists every managed thread,
//     each with a human-readable name and a self-reported activity string.
//   - Join semantics: blocking join, bounded-timeout join, lazy result
//     mapping, and select-style waiting on the first of many handles.
//
// # Spawning Threads
//
// Threads are configured through a [Builder] and started with [Spawn]:
//
//	thread, err := humthreads.Spawn(
//	    humthreads.New("worker").FullName("background worker"),
//	    func(scope *humthreads.ThreadScope) int {
//	        n := 0
//	        for !scope.ShouldShutdown() {
//	            n += process()
//	        }
//	        return n
//	    },
//	)
//
// The short name is passed to the OS (on Linux it becomes the kernel thread
// name, truncated to 15 bytes); the full name is kept only for
// introspection and has no length limit.
//
// # Joining
//
// [Thread.Join] blocks until the thread function returns and yields its
// result. If the function panicked, Join returns a [*JoinError] carrying
// the captured [*PanicError]. The join capability is single-use: every call
// after the first (including concurrent racers) returns [ErrJoinedAlready].
//
// [Thread.JoinTimeout] bounds the wait. On expiry it returns
// [ErrJoinTimeout] without consuming the join capability, so a later join
// can still succeed.
//
// [MapJoin] derives a handle whose join applies a transform to the
// original result. The transform runs lazily, at join time only.
//
// # Introspection
//
// [RegisteredThreads] returns a point-in-time snapshot of every managed
// thread currently running. Inside the thread, the [ThreadScope] reports
// what the thread is doing:
//
//	scope.Activity("flushing batch")
//	defer scope.Idle()
//
// [ThreadScope.ScopedActivity] nests: it swaps in a new activity and
// returns an [ActivityGuard] that restores the displaced value on
// [ActivityGuard.Done].
//
// # Waiting on Many Threads
//
// A [SelectSet] multiplexes completion across handles. Each handle
// registers with SelectAdd; [SelectSet.WaitTimeout] reports which handle
// finished first, and SelectJoin completes that handle's join:
//
//	set := humthreads.NewSelectSet()
//	idx1 := t1.SelectAdd(set)
//	idx2 := t2.SelectAdd(set)
//	op, err := set.WaitTimeout(time.Second)
//
// # Cooperative Shutdown
//
// [Thread.RequestShutdown] sets a flag the thread body can poll with
// [ThreadScope.ShouldShutdown]. There is no preemptive cancellation: a
// thread that never polls runs to completion regardless of requests.
//
// # Metrics
//
// The threadmetrics subpackage exposes the registry as a Prometheus
// collector for host applications that already scrape metrics.
package humthreads
