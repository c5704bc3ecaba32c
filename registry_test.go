package humthreads

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findStatus returns the snapshot entry with the given short name.
func findStatus(threads []ThreadStatus, shortName string) (ThreadStatus, bool) {
	for _, status := range threads {
		if status.ShortName == shortName {
			return status, true
		}
	}
	return ThreadStatus{}, false
}

func TestThreadRegistrationLifecycle(t *testing.T) {
	ready := make(chan struct{})
	thread, err := Spawn(
		New("registration-lifecycle").FullName("thread registration lifecycle long"),
		func(scope *ThreadScope) int {
			close(ready)
			for !scope.ShouldShutdown() {
				time.Sleep(time.Millisecond)
			}
			return 0
		},
	)
	require.NoError(t, err)

	<-ready
	running := RegisteredThreads()

	thread.RequestShutdown()
	_, err = thread.Join()
	require.NoError(t, err)
	stopped := RegisteredThreads()

	status, found := findStatus(running, "registration-lifecycle")
	require.True(t, found)
	expected := ThreadStatus{
		Name:      "thread registration lifecycle long",
		ShortName: "registration-lifecycle",
	}
	assert.Empty(t, cmp.Diff(expected, status))

	_, found = findStatus(stopped, "registration-lifecycle")
	assert.False(t, found)
}

func TestRegisteredThreadsSnapshotIsolation(t *testing.T) {
	ready := make(chan struct{})
	thread, err := Spawn(New("snapshot-isolation"), func(scope *ThreadScope) int {
		close(ready)
		for !scope.ShouldShutdown() {
			time.Sleep(time.Millisecond)
		}
		return 0
	})
	require.NoError(t, err)
	<-ready

	snapshot := RegisteredThreads()
	_, found := findStatus(snapshot, "snapshot-isolation")
	require.True(t, found)

	thread.RequestShutdown()
	_, err = thread.Join()
	require.NoError(t, err)

	// The thread is gone from the registry but the earlier snapshot is a
	// point-in-time copy and still carries its entry.
	_, found = findStatus(snapshot, "snapshot-isolation")
	assert.True(t, found)
	_, found = findStatus(RegisteredThreads(), "snapshot-isolation")
	assert.False(t, found)
}

func TestRegisteredThreadsConcurrentSpawns(t *testing.T) {
	const workers = 16
	ready := make(chan struct{}, workers)
	threads := make([]*Thread[int], 0, workers)
	for i := 0; i < workers; i++ {
		thread, err := Spawn(New("concurrent-spawn"), func(scope *ThreadScope) int {
			ready <- struct{}{}
			for !scope.ShouldShutdown() {
				time.Sleep(time.Millisecond)
			}
			return 0
		})
		require.NoError(t, err)
		threads = append(threads, thread)
	}
	for i := 0; i < workers; i++ {
		<-ready
	}

	registered := 0
	for _, status := range RegisteredThreads() {
		if status.ShortName == "concurrent-spawn" {
			registered++
		}
	}
	assert.Equal(t, workers, registered)

	for _, thread := range threads {
		thread.RequestShutdown()
	}
	for _, thread := range threads {
		_, err := thread.Join()
		require.NoError(t, err)
	}

	_, found := findStatus(RegisteredThreads(), "concurrent-spawn")
	assert.False(t, found)
}
