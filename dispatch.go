package parfor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/panics"

	"github.com/ygrebnov/parfor/internal/affinity"
	"github.com/ygrebnov/parfor/launch"
)

// position is a worker's progress through its chunk. It is written only by the
// worker that owns it.
type position struct {
	index     int // global index of the element being processed
	processed int
}

// unit processes the chunk of one worker. It returns nil once the whole chunk was
// processed, errCancelled if it stopped on the cancellation flag, or the element error.
type unit func(worker int, pos *position) error

// run holds the state of a single ForEach* call.
type run struct {
	cfg       *config
	fail      failure
	completed atomic.Int64
	inst      instruments
}

func newRun(cfg *config) *run {
	return &run{cfg: cfg, inst: newInstruments(cfg.Metrics)}
}

// dispatch starts one unit per worker and waits for all of them, in launch order,
// before reporting the first recorded failure. A context that ends after every unit
// finished its chunk does not fail the call.
func (r *run) dispatch(ctx context.Context, workers int, u unit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() { r.fail.interrupt(ctx.Err()) })

	handles := make([]launch.Handle, workers)
	for w := range handles {
		r.inst.launched.Add(1)
		handles[w] = r.cfg.Launcher.Submit(func() error { return r.work(w, u) })
	}

	for _, h := range handles {
		if err := h.Wait(); err != nil {
			r.fail.record(err)
		}
	}

	stop()
	return r.fail.settle(r.completed.Load() == int64(workers))
}

// work runs u for worker on the current goroutine and folds its outcome into the
// shared state. Unit failures are recorded here, so the returned error is always nil.
func (r *run) work(worker int, u unit) error {
	if r.cfg.Affinity {
		release, _ := affinity.Bind(worker)
		defer release()
	}

	r.inst.inflight.Add(1)
	defer r.inst.inflight.Add(-1)
	start := time.Now()

	var (
		pos position
		err error
	)
	if rec := panics.Try(func() { err = r.complete(worker, u, &pos) }); rec != nil {
		err = r.tag(fmt.Errorf("%w: %w", ErrTaskPanicked, rec.AsError()), worker, pos.index)
	}

	r.inst.elements.Add(int64(pos.processed))
	r.inst.duration.Record(time.Since(start).Seconds())

	switch {
	case err == nil:
		r.inst.completed.Add(1)
	case errors.Is(err, errCancelled):
		r.inst.cancelled.Add(1)
	default:
		r.inst.failed.Add(1)
		r.fail.record(err)
	}
	return nil
}

// complete runs u and, when the chunk was fully processed, reports progress.
func (r *run) complete(worker int, u unit, pos *position) error {
	if err := u(worker, pos); err != nil {
		return err
	}
	r.cfg.Progress(int(r.completed.Add(1)))
	return nil
}

// tag attaches chunk metadata to err when error tagging is enabled.
func (r *run) tag(err error, worker, index int) error {
	if !r.cfg.ErrorTagging {
		return err
	}
	return newChunkError(err, worker, index)
}
