//go:build !linux

package humthreads

// Thread naming is only wired up on Linux. Other platforms keep the name
// in the introspection API alone.
func setOSThreadName(name string) {
	_ = name
}
