package parfor

import "context"

// ForEach calls f once for every element of [begin, end), spreading the range over
// a fixed set of workers, one contiguous chunk each.
//
// The worker count comes from WithThreads or DefaultThreads and is reduced to the
// number of elements. Within a chunk elements are visited in order; chunks run
// concurrently. Every worker checks a shared cancellation flag before each element.
//
// ForEach returns after all workers have finished. If f fails (returns an error
// or panics) or ctx is done, the remaining elements of every chunk are skipped and
// the first failure is returned; later ones are dropped. Elements processed
// before that stay processed.
func ForEach[T any, F Body[T]](ctx context.Context, begin, end Cursor[T], f F, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	chunks := Partition(Distance(begin, end), cfg.Threads)
	if len(chunks) == 0 {
		return nil
	}
	spans := split(begin, end, chunks)
	fn := bindBody[T](f)

	r := newRun(cfg)
	return r.dispatch(ctx, len(spans), func(worker int, pos *position) error {
		s := spans[worker]
		pos.index = s.Offset
		for it := s.begin; !it.Equal(s.end); it = it.Next() {
			if r.fail.stopped() {
				return errCancelled
			}
			if err := fn(it.Value(), pos.index, worker); err != nil {
				return r.tag(err, worker, pos.index)
			}
			pos.index++
			pos.processed++
		}
		return nil
	})
}

// ForEachSlice is ForEach over the elements of s, passed to f by pointer.
func ForEachSlice[E any, F Body[*E]](ctx context.Context, s []E, f F, opts ...Option) error {
	begin, end := Slice(s)
	return ForEach[*E, F](ctx, begin, end, f, opts...)
}
