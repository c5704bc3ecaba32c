package humthreads

import (
	"sync/atomic"
	"time"
)

// threadResult carries the terminal outcome of a thread function: the
// returned value, or the captured panic if the function did not return.
type threadResult[T any] struct {
	value    T
	panicked *PanicError
}

// Thread is the parent-side handle on a managed thread, returned by
// [Spawn].
//
// The handle owns three things: the result channel the thread publishes
// its outcome on, the join-check channel closed when the thread exits, and
// the shared shutdown flag. The join capability is single-use; see
// [Thread.Join].
type Thread[T any] struct {
	joined    atomic.Bool
	result    chan threadResult[T]
	joinCheck chan struct{}
	shutdown  *atomic.Bool
}

// Join waits for the thread to finish and returns the thread function's
// result. If the function panicked, Join returns a [*JoinError] carrying
// the captured panic.
//
// The join capability is consumed exactly once: the first caller wins and
// every other call, including concurrent calls that lose the race, returns
// [ErrJoinedAlready].
func (t *Thread[T]) Join() (T, error) {
	var zero T
	if !t.joined.CompareAndSwap(false, true) {
		return zero, ErrJoinedAlready
	}

	res := <-t.result
	if res.panicked != nil {
		return zero, &JoinError{Panic: res.panicked}
	}
	return res.value, nil
}

// JoinTimeout is like [Thread.Join] but does not block forever.
//
// It first waits up to timeout for the thread's completion signal. If the
// signal does not arrive in time, JoinTimeout returns [ErrJoinTimeout]
// without consuming the join capability, so a later join can still
// succeed. Once the signal arrives it performs a normal join, which always
// yields the true terminal outcome even if the signal was observed on
// another path first.
func (t *Thread[T]) JoinTimeout(timeout time.Duration) (T, error) {
	var zero T
	if t.joined.Load() {
		return zero, ErrJoinedAlready
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-t.joinCheck:
	case <-timer.C:
		return zero, ErrJoinTimeout
	}
	return t.Join()
}

// RequestShutdown signals the thread that it should stop as soon as
// possible. Idempotent and non-blocking.
//
// The request is advisory: it only takes effect if the thread body polls
// [ThreadScope.ShouldShutdown].
func (t *Thread[T]) RequestShutdown() {
	t.shutdown.Store(true)
}

// SelectAdd registers this handle's completion signal into a [SelectSet]
// and returns the index identifying it within the set.
func (t *Thread[T]) SelectAdd(set *SelectSet) int {
	return set.add(t.joinCheck)
}

// SelectJoin completes a join whose readiness was reported by a
// [SelectSet] wait. The op's receive has already been performed by the
// set, so SelectJoin goes straight to the normal join and returns its
// result.
func (t *Thread[T]) SelectJoin(op SelectedOp) (T, error) {
	_ = op
	return t.Join()
}
