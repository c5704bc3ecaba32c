package humthreads

import (
	"sync/atomic"
	"time"
)

// MapThread is a handle that transforms the result of a join, created by
// [MapJoin].
//
// It shares the underlying thread's completion signal and shutdown flag
// but carries its own single-use join capability wrapping the composed
// join closure.
type MapThread[T any] struct {
	joined    atomic.Bool
	join      func() (T, error)
	joinCheck chan struct{}
	shutdown  *atomic.Bool
}

// MapJoin derives a handle of a different result type by lazily composing
// transform with the eventual join result.
//
// The transform runs only when the returned handle is joined, never at
// call time, and only on success: join errors pass through untouched.
// MapJoin is a free function because Go methods cannot introduce type
// parameters.
//
// The derived handle shares the original's join capability: joining either
// handle consumes it, and the other then reports [ErrJoinedAlready].
func MapJoin[T, U any](t *Thread[T], transform func(T) U) *MapThread[U] {
	return &MapThread[U]{
		join: func() (U, error) {
			var zero U
			value, err := t.Join()
			if err != nil {
				return zero, err
			}
			return transform(value), nil
		},
		joinCheck: t.joinCheck,
		shutdown:  t.shutdown,
	}
}

// Join is the same as [Thread.Join] but applies the transform to the join
// result.
func (t *MapThread[T]) Join() (T, error) {
	var zero T
	if !t.joined.CompareAndSwap(false, true) {
		return zero, ErrJoinedAlready
	}
	return t.join()
}

// JoinTimeout is the same as [Thread.JoinTimeout] but applies the
// transform to the join result.
func (t *MapThread[T]) JoinTimeout(timeout time.Duration) (T, error) {
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

// RequestShutdown is the same as [Thread.RequestShutdown].
func (t *MapThread[T]) RequestShutdown() {
	t.shutdown.Store(true)
}

// SelectAdd registers this handle's completion signal into a [SelectSet]
// and returns the index identifying it within the set.
func (t *MapThread[T]) SelectAdd(set *SelectSet) int {
	return set.add(t.joinCheck)
}

// SelectJoin completes a join whose readiness was reported by a
// [SelectSet] wait. See [Thread.SelectJoin].
func (t *MapThread[T]) SelectJoin(op SelectedOp) (T, error) {
	_ = op
	return t.Join()
}
