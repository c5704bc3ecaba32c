//go:build linux

package humthreads

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// The kernel limits thread names to 15 bytes plus the terminating NUL.
const osThreadNameLimit = 15

// setOSThreadName names the calling OS thread so kernel tools (ps, top,
// /proc/<pid>/task) can identify it. Best effort: naming failures are
// ignored, the introspection API keeps the full name regardless.
func setOSThreadName(name string) {
	if len(name) > osThreadNameLimit {
		name = name[:osThreadNameLimit]
	}
	ptr, err := unix.BytePtrFromString(name)
	if err != nil {
		return
	}
	_ = unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(ptr)), 0, 0, 0)
}
