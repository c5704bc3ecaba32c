package humthreads

import "sync"

// ThreadStatus is a point-in-time view of one registered managed thread.
//
// Values are immutable snapshot copies: they have no lifecycle beyond the
// [RegisteredThreads] call that produced them and are safe to store,
// compare, and serialize. An empty Activity means the thread reported no
// current activity; it is omitted from the JSON form.
type ThreadStatus struct {
	// Name is the full name of the thread, used only for introspection.
	Name string `json:"name"`

	// ShortName is the name passed to the OS. It is called the short name
	// because OS thread names usually have a length limit.
	ShortName string `json:"short_name"`

	// Activity is the thread's self-reported current activity, if any.
	Activity string `json:"activity,omitempty"`
}

// activityCell is the mutable activity slot shared between a thread's
// registry entry and its ThreadScope. The worker mutates it; registry
// snapshots read it concurrently, so it carries its own lock.
type activityCell struct {
	mu      sync.Mutex
	current string
}

func (c *activityCell) set(activity string) {
	c.mu.Lock()
	c.current = activity
	c.mu.Unlock()
}

// swap stores activity and returns the value it displaced.
func (c *activityCell) swap(activity string) string {
	c.mu.Lock()
	previous := c.current
	c.current = activity
	c.mu.Unlock()
	return previous
}

func (c *activityCell) load() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// registeredStatus is the registry-owned record for one live thread.
// The activity cell is shared, not owned: the thread's ThreadScope holds
// the same cell.
type registeredStatus struct {
	name      string
	shortName string
	activity  *activityCell
}

func (s *registeredStatus) snapshot() ThreadStatus {
	return ThreadStatus{
		Name:      s.name,
		ShortName: s.shortName,
		Activity:  s.activity.load(),
	}
}
