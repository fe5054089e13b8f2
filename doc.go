// Package parfor runs a function over every element of a range using a fixed
// number of workers, each owning one contiguous chunk of the range.
//
// Entry points
//   - ForEach(ctx, begin, end, f, opts...): any range expressed with Cursor values.
//     RandomAccess cursors are split in constant time, forward-only cursors in a
//     single pass.
//   - ForEachSlice(ctx, s, f, opts...): ForEach over a slice, elements by pointer.
//   - ForEachIndex(ctx, start, end, step, f, opts...): a stepped integer range.
//   - ForEachStatic[T, R](ctx, f, opts...): a stepped integer range whose bounds,
//     step and worker count are fixed by the type R.
//   - Map(ctx, items, fn, opts...): ForEachSlice collecting fn's results in input order.
//
// Element functions
// The function signature selects which context it receives:
//   - func(T) / func(T) error
//   - func(T, index int) / func(T, index int) error
//   - func(T, index, worker int) / func(T, index, worker int) error
//
// Index functions for the integer forms take the index and optionally the worker id.
// Other signatures do not compile.
//
// Worker count
// Resolved per call from WithThreads, otherwise from DefaultThreads: the
// PARFOR_NUM_THREADS environment variable read once per process, or NumThreads.
// The result is clamped to [MinThreads, MaxThreads]. The dynamic forms also never
// use more workers than there are elements.
//
// Failures
// The first failure (an error or panic in the element function, a launch failure,
// or ctx being done) sets a shared flag that every worker checks before its next
// element. The call returns that failure once all workers have returned; later
// failures are dropped. A failed call may have applied f to some elements.
//
// Defaults
//   - Threads: DefaultThreads()
//   - Progress: none
//   - Launcher: launch.Goroutines() (one fresh goroutine per worker)
//   - Affinity: enabled (Linux only; silently skipped elsewhere)
//   - Metrics: metrics.NoopProvider
//   - ErrorTagging: false
package parfor
