// Package affinity pins the OS thread of the calling goroutine to one CPU core
// where the platform allows it. Every failure is silent: callers get a no-op
// release function and carry on unpinned.
package affinity

// Bind locks the calling goroutine to its OS thread and restricts the thread to a single
// core chosen as worker modulo the number of usable cores.
// The returned release restores the previous state and must be called on the same goroutine.
// ok reports whether the thread was actually pinned.
func Bind(worker int) (release func(), ok bool) {
	if worker < 0 {
		return func() {}, false
	}
	return bind(worker)
}
