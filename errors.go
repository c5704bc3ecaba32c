package humthreads

import (
	"errors"
	"fmt"
)

// Sentinel errors for join-state failures.
//
// These indicate how far the handle got, not why the thread failed, so they
// carry no payload and compare with [errors.Is].
var (
	// ErrJoinTimeout is returned by timed joins and select waits when the
	// thread did not signal completion within the allotted time. The join
	// capability is not consumed: a later join may still succeed.
	ErrJoinTimeout = errors.New("humthreads: thread did not stop within the allotted time")

	// ErrJoinedAlready is returned when the handle's single-use join
	// capability was already consumed by an earlier call. Always a caller
	// logic error, never transient.
	ErrJoinedAlready = errors.New("humthreads: thread already joined")
)

// SpawnError reports that a new managed thread could not be started.
// No partial state is left behind: a thread that failed to spawn is never
// registered.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("humthreads: unable to spawn new thread: %v", e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// JoinError reports that the thread function terminated by panicking
// rather than returning. The captured panic payload is carried opaquely
// for the caller to inspect or log.
type JoinError struct {
	Panic *PanicError
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("humthreads: unable to join thread: %v", e.Panic.Value)
}

func (e *JoinError) Unwrap() error {
	return e.Panic
}

// IsJoinError reports whether err (or any error in its chain) is a
// [*JoinError], i.e. the thread terminated by panicking.
func IsJoinError(err error) bool {
	if err == nil {
		return false
	}
	var je *JoinError
	return errors.As(err, &je)
}

// PanicOf extracts the captured [*PanicError] from the first [*JoinError]
// in err's chain. Returns false if the error does not describe a panic.
func PanicOf(err error) (*PanicError, bool) {
	if err == nil {
		return nil, false
	}

	var je *JoinError
	if errors.As(err, &je) {
		return je.Panic, true
	}
	return nil, false
}
