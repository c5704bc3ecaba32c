package humthreads

import (
	"reflect"
	"time"
)

// SelectSet waits on the completion signals of several thread handles at
// once, reporting the first to finish without polling.
//
// Handles register through their SelectAdd methods, which return a stable
// index into the set. After a wait reports an index, call SelectJoin on
// the matching handle to retrieve its result.
//
// A SelectSet is not safe for concurrent use; build one per waiting
// goroutine. Completion signals stay ready once the thread exits, so a
// set can be waited on repeatedly to collect threads as they finish.
type SelectSet struct {
	cases []reflect.SelectCase
}

// NewSelectSet returns an empty wait set.
func NewSelectSet() *SelectSet {
	return &SelectSet{}
}

// SelectedOp identifies the handle a select wait found ready.
type SelectedOp struct {
	index int
}

// Index returns the registration index of the ready handle, as returned
// by the handle's SelectAdd.
func (op SelectedOp) Index() int {
	return op.index
}

func (s *SelectSet) add(joinCheck chan struct{}) int {
	s.cases = append(s.cases, reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(joinCheck),
	})
	return len(s.cases) - 1
}

// Wait blocks until any registered handle signals completion and returns
// the operation identifying it. Wait panics on an empty set, which would
// otherwise block forever.
func (s *SelectSet) Wait() SelectedOp {
	if len(s.cases) == 0 {
		panic("humthreads: Wait on empty SelectSet")
	}
	chosen, _, _ := reflect.Select(s.cases)
	return SelectedOp{index: chosen}
}

// WaitTimeout is like [SelectSet.Wait] but gives up after timeout,
// returning [ErrJoinTimeout] if no registered handle signalled completion
// in time.
func (s *SelectSet) WaitTimeout(timeout time.Duration) (SelectedOp, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	cases := make([]reflect.SelectCase, 0, len(s.cases)+1)
	cases = append(cases, s.cases...)
	cases = append(cases, reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(timer.C),
	})

	chosen, _, _ := reflect.Select(cases)
	if chosen == len(s.cases) {
		return SelectedOp{}, ErrJoinTimeout
	}
	return SelectedOp{index: chosen}, nil
}
