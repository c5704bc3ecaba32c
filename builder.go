package humthreads

import (
	"errors"
	"runtime"
	"sync/atomic"
	"time"
)

// Builder configures the properties of a new managed thread.
//
// Managed threads wrap plain goroutines to provide a few additional
// features:
//
//   - Shutdown requests: thread handles can signal their thread it should
//     stop (be warned the thread function may ignore this).
//   - Thread introspection: APIs provide information about running threads
//     (threads can even report what they are doing at the time).
//
// Each managed thread is locked to a dedicated OS thread for its entire
// lifetime; the OS thread is torn down when the thread function returns.
type Builder struct {
	fullName string
	name     string
	onStart  func(ThreadStatus)
	onExit   func(ThreadStatus, *PanicError, time.Duration)
}

// New returns a Builder for a thread with the given short name.
//
// The short name is passed to the OS, which may truncate it (Linux limits
// thread names to 15 bytes), so OS tools may display a different value
// than the introspection API.
func New(name string) *Builder {
	return &Builder{
		fullName: name,
		name:     name,
	}
}

// FullName sets the full name used for introspection.
//
// The full name is never passed to the OS, so it is not subject to the OS
// limit on thread names.
func (b *Builder) FullName(name string) *Builder {
	b.fullName = name
	return b
}

// OnStart registers a hook invoked inside the new thread, after it is
// registered and before the thread function runs. A panic in the hook is
// treated as a panic of the thread function.
func (b *Builder) OnStart(fn func(ThreadStatus)) *Builder {
	b.onStart = fn
	return b
}

// OnExit registers a hook invoked inside the thread after the thread
// function finished and the thread was deregistered. It receives the last
// status snapshot, the captured panic (nil on normal return), and the
// thread's wall-clock run time. The hook must not panic.
func (b *Builder) OnExit(fn func(ThreadStatus, *PanicError, time.Duration)) *Builder {
	b.onExit = fn
	return b
}

// Spawn starts a new managed thread running fn and returns its handle.
//
// Before fn runs, the new thread registers itself so it shows up in
// [RegisteredThreads]; the entry is removed on every exit path, panic
// unwinds included. Spawn is a free function because Go methods cannot
// introduce type parameters.
//
// Spawn returns a [*SpawnError] if the builder configuration is invalid;
// in that case no thread is started and nothing is registered.
func Spawn[T any](b *Builder, fn func(scope *ThreadScope) T) (*Thread[T], error) {
	if b.name == "" {
		return nil, &SpawnError{Err: errors.New("thread name must not be empty")}
	}

	shutdown := new(atomic.Bool)
	joinCheck := make(chan struct{})
	result := make(chan threadResult[T], 1)
	activity := new(activityCell)
	status := &registeredStatus{
		name:      b.fullName,
		shortName: b.name,
		activity:  activity,
	}
	scope := &ThreadScope{
		activity: activity,
		shutdown: shutdown,
	}

	name := b.name
	onStart := b.onStart
	onExit := b.onExit

	go func() {
		// The goroutine never unlocks, so the OS thread is destroyed when
		// it exits: one managed thread, one OS thread, same lifetime.
		runtime.LockOSThread()
		setOSThreadName(name)

		guard := newThreadGuard(newThreadID(), joinCheck, status)
		start := time.Now()

		var res threadResult[T]
		func() {
			defer func() {
				if r := recover(); r != nil {
					res.panicked = newPanicError(r)
				}
			}()
			if onStart != nil {
				onStart(status.snapshot())
			}
			res.value = fn(scope)
		}()

		// Snapshot before release: the registry entry is gone after.
		last := status.snapshot()
		guard.release()
		if onExit != nil {
			// A panic here is intentionally unrecovered: observability
			// hooks must not panic.
			onExit(last, res.panicked, time.Since(start))
		}
		result <- res
	}()

	return &Thread[T]{
		result:    result,
		joinCheck: joinCheck,
		shutdown:  shutdown,
	}, nil
}
