//go:build linux

package affinity

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func bind(worker int) (func(), bool) {
	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return func() {}, false
	}
	n := prev.Count()
	if n == 0 {
		runtime.UnlockOSThread()
		return func() {}, false
	}
	core, ok := nthCPU(&prev, worker%n)
	if !ok {
		runtime.UnlockOSThread()
		return func() {}, false
	}

	var set unix.CPUSet
	set.Set(core)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return func() {}, false
	}

	return func() {
		// A thread whose mask cannot be restored stays locked and is
		// discarded by the runtime when the goroutine exits.
		if err := unix.SchedSetaffinity(0, &prev); err == nil {
			runtime.UnlockOSThread()
		}
	}, true
}

// nthCPU returns the n-th (zero based) cpu present in set.
func nthCPU(set *unix.CPUSet, n int) (int, bool) {
	for cpu := 0; cpu < len(set)*64; cpu++ {
		if !set.IsSet(cpu) {
			continue
		}
		if n == 0 {
			return cpu, true
		}
		n--
	}
	return 0, false
}
