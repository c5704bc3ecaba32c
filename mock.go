package humthreads

import "sync/atomic"

// MockThreadScope fakes a [ThreadScope] for use in tests.
//
// Host applications pass scopes into the code under test without spawning
// real threads, drive shutdown from the test body, and assert on the
// activity the code reported.
type MockThreadScope struct {
	activity *activityCell
	shutdown *atomic.Bool
}

// NewMockThreadScope returns a mock with no activity and shutdown unset.
func NewMockThreadScope() *MockThreadScope {
	return &MockThreadScope{
		activity: new(activityCell),
		shutdown: new(atomic.Bool),
	}
}

// Scope returns a ThreadScope reflecting the state of this mock.
func (m *MockThreadScope) Scope() *ThreadScope {
	return &ThreadScope{
		activity: m.activity,
		shutdown: m.shutdown,
	}
}

// SetShutdown sets the value that [ThreadScope.ShouldShutdown] will
// return.
func (m *MockThreadScope) SetShutdown(value bool) {
	m.shutdown.Store(value)
}

// ReportedActivity returns the activity most recently reported through the
// mock's scope, or the empty string if none.
func (m *MockThreadScope) ReportedActivity() string {
	return m.activity.load()
}
