package parfor

import (
	"context"

	"github.com/ygrebnov/errorc"
)

// Integer is the set of index types accepted by ForEachIndex and ForEachStatic.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// StaticRange describes a stepped index range [Start, End) and its worker count
// through the methods of a type. Implement it on an empty struct whose methods
// return constants:
//
//	type grid struct{}
//
//	func (grid) Start() int   { return 0 }
//	func (grid) End() int     { return 1024 }
//	func (grid) Step() int    { return 1 }
//	func (grid) Threads() int { return 8 }
//
// The partition then depends on constants only and is folded by the compiler.
// A non-positive Threads falls back to the call's configured worker count.
type StaticRange[T Integer] interface {
	Start() T
	End() T
	Step() T
	Threads() int
}

// StaticChunk is the share of one worker in a stepped index range: Count indices
// starting at First, Step apart. Offset is the position of First in the whole
// sequence of indices.
type StaticChunk[T Integer] struct {
	Worker int
	First  T
	Count  int
	Step   T
	Offset int
}

// At returns the k-th index of the chunk.
func (c StaticChunk[T]) At(k int) T { return c.First + T(k)*c.Step }

// Indices lists the indices of the chunk.
func (c StaticChunk[T]) Indices() []T {
	out := make([]T, c.Count)
	for k := range out {
		out[k] = c.At(k)
	}
	return out
}

// StaticPartition splits the indices start, start+step, ... below end among threads workers.
//
// Each worker gets ceil(total/threads) indices; the last non-empty share is cut at
// the end of the range, and workers past it get none. For (0, 100, 1, 3) the counts
// are 34, 34 and 32. An empty range yields no chunks; a non-positive step is an error.
func StaticPartition[T Integer](start, end, step T, threads int) ([]StaticChunk[T], error) {
	if step <= 0 {
		return nil, errorc.With(ErrInvalidRange, errorc.String("", "step must be > 0"))
	}
	if threads <= 0 {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "threads must be > 0"))
	}
	if end <= start {
		return nil, nil
	}

	// Signed ranges can be wider than T holds; the difference wraps correctly in uint64.
	width, stride := uint64(end)-uint64(start), uint64(step)
	total := int(width / stride)
	if width%stride != 0 {
		total++
	}
	per := (total + threads - 1) / threads

	chunks := make([]StaticChunk[T], threads)
	for i := range chunks {
		offset := min(i*per, total)
		chunks[i] = StaticChunk[T]{
			Worker: i,
			First:  start + T(offset)*step,
			Count:  min(per, total-offset),
			Step:   step,
			Offset: offset,
		}
	}
	return chunks, nil
}

// ForEachIndex calls f for every index start, start+step, ... below end, split among
// workers as StaticPartition describes. Failure and cancellation behave as in ForEach.
func ForEachIndex[T Integer, F IndexBody[T]](
	ctx context.Context, start, end, step T, f F, opts ...Option,
) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	chunks, err := StaticPartition(start, end, step, cfg.Threads)
	if err != nil || len(chunks) == 0 {
		return err
	}
	fn := bindIndexBody[T](f)

	r := newRun(cfg)
	return r.dispatch(ctx, len(chunks), func(worker int, pos *position) error {
		c := chunks[worker]
		for k := 0; k < c.Count; k++ {
			if r.fail.stopped() {
				return errCancelled
			}
			pos.index = c.Offset + k
			if err := fn(c.At(k), pos.index, worker); err != nil {
				return r.tag(err, worker, pos.index)
			}
			pos.processed++
		}
		return nil
	})
}

// ForEachStatic is ForEachIndex over the range described by R.
// The worker count of R takes precedence over WithThreads.
func ForEachStatic[T Integer, R StaticRange[T], F IndexBody[T]](ctx context.Context, f F, opts ...Option) error {
	var rng R
	if n := rng.Threads(); n > 0 {
		opts = append(opts[:len(opts):len(opts)], WithThreads(n))
	}
	return ForEachIndex[T, F](ctx, rng.Start(), rng.End(), rng.Step(), f, opts...)
}
