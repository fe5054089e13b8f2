package parfor

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	// NumThreads is the worker count used when neither WithThreads nor the
	// environment override is given.
	NumThreads = 4

	// MinThreads and MaxThreads bound every resolved worker count.
	MinThreads = 1
	MaxThreads = 64

	// EnvNumThreads names the environment variable consulted once per process.
	EnvNumThreads = "PARFOR_NUM_THREADS"
)

var (
	defaultThreadsOnce sync.Once
	defaultThreads     int
)

// DefaultThreads returns the process-wide worker count.
// The environment is read on first use only; later changes to it are not observed.
func DefaultThreads() int {
	defaultThreadsOnce.Do(func() {
		defaultThreads = resolveThreads(os.LookupEnv)
	})
	return defaultThreads
}

// resolveThreads derives a worker count from lookup, falling back to NumThreads
// when the variable is absent or not an integer.
func resolveThreads(lookup func(string) (string, bool)) int {
	v, ok := lookup(EnvNumThreads)
	if !ok {
		return NumThreads
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return NumThreads
	}
	return clampThreads(n)
}

func clampThreads(n int) int {
	return min(MaxThreads, max(MinThreads, n))
}
