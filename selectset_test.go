package humthreads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectInterface(t *testing.T) {
	thread, err := Spawn(New("select-interface"), func(_ *ThreadScope) int {
		time.Sleep(10 * time.Millisecond)
		return 5
	})
	require.NoError(t, err)

	set := NewSelectSet()
	idx := thread.SelectAdd(set)
	assert.Equal(t, 0, idx)

	op, err := set.WaitTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, idx, op.Index())

	value, err := thread.SelectJoin(op)
	require.NoError(t, err)
	assert.Equal(t, 5, value)
}

func TestSelectMultipleThreads(t *testing.T) {
	// thread1 runs until asked to stop; thread2 finishes on its own.
	thread1, ready := pollingWorker(t, "select-multiple-1", 1)
	<-ready
	thread2, err := Spawn(New("select-multiple-2"), func(_ *ThreadScope) int {
		time.Sleep(10 * time.Millisecond)
		return 2
	})
	require.NoError(t, err)

	set := NewSelectSet()
	idx1 := thread1.SelectAdd(set)
	idx2 := thread2.SelectAdd(set)

	op, err := set.WaitTimeout(time.Second)
	require.NoError(t, err)
	assert.NotEqual(t, idx1, op.Index())
	assert.Equal(t, idx2, op.Index())

	value, err := thread2.SelectJoin(op)
	require.NoError(t, err)
	assert.Equal(t, 2, value)

	// The losing thread is unaffected: still running, still joinable.
	_, found := findStatus(RegisteredThreads(), "select-multiple-1")
	assert.True(t, found)
	thread1.RequestShutdown()
	value, err = thread1.Join()
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestSelectPanic(t *testing.T) {
	thread, err := Spawn(New("select-panic"), func(_ *ThreadScope) int {
		time.Sleep(10 * time.Millisecond)
		panic("this panic is expected")
	})
	require.NoError(t, err)
	mapped := MapJoin(thread, func(value int) bool {
		return true
	})

	set := NewSelectSet()
	idx := mapped.SelectAdd(set)
	op, err := set.WaitTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, idx, op.Index())

	_, err = mapped.SelectJoin(op)
	assert.True(t, IsJoinError(err))
}

func TestSelectTimeout(t *testing.T) {
	thread, ready := pollingWorker(t, "select-timeout", 0)
	<-ready

	set := NewSelectSet()
	thread.SelectAdd(set)
	_, err := set.WaitTimeout(20 * time.Millisecond)
	assert.ErrorIs(t, err, ErrJoinTimeout)

	thread.RequestShutdown()
	_, err = thread.Join()
	require.NoError(t, err)
}

func TestSelectWait(t *testing.T) {
	thread, err := Spawn(New("select-wait"), func(_ *ThreadScope) int {
		time.Sleep(5 * time.Millisecond)
		return 8
	})
	require.NoError(t, err)

	set := NewSelectSet()
	idx := thread.SelectAdd(set)
	op := set.Wait()
	assert.Equal(t, idx, op.Index())

	value, err := thread.SelectJoin(op)
	require.NoError(t, err)
	assert.Equal(t, 8, value)
}

func TestSelectWaitEmptySetPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSelectSet().Wait()
	})
}

func TestSelectWaitRepeatable(t *testing.T) {
	// Completion signals stay ready, so one set can collect threads in
	// whatever order they finish.
	thread1, err := Spawn(New("select-repeat-1"), func(_ *ThreadScope) int {
		time.Sleep(5 * time.Millisecond)
		return 1
	})
	require.NoError(t, err)
	thread2, err := Spawn(New("select-repeat-2"), func(_ *ThreadScope) int {
		time.Sleep(5 * time.Millisecond)
		return 2
	})
	require.NoError(t, err)

	set := NewSelectSet()
	thread1.SelectAdd(set)
	thread2.SelectAdd(set)

	_, err = thread1.Join()
	require.NoError(t, err)
	_, err = thread2.Join()
	require.NoError(t, err)

	// Both threads exited: every wait reports a ready handle immediately.
	for i := 0; i < 3; i++ {
		_, err := set.WaitTimeout(time.Second)
		require.NoError(t, err)
	}
}
