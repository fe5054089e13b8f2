package parfor

import (
	"errors"
	"sync"
	"sync/atomic"
)

// errCancelled is returned by a unit that stopped because another one failed.
// It never leaves the package.
var errCancelled = errors.New(Namespace + ": worker cancelled")

// failure is the state shared by the workers of one call: a cancellation flag that
// only ever goes from false to true, and a cell holding the first recorded error.
type failure struct {
	cancelled atomic.Bool

	mu          sync.Mutex
	err         error
	interrupted bool
}

// stopped reports whether workers should stop before their next element.
func (f *failure) stopped() bool { return f.cancelled.Load() }

// record stores err unless an error was already stored, and requests cancellation.
// Errors arriving after cancellation was requested are dropped.
func (f *failure) record(err error) {
	if err == nil || f.cancelled.Load() {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
		f.cancelled.Store(true)
	}
}

// interrupt stores the reason the caller's context ended, under the same first-wins
// rule as record.
func (f *failure) interrupt(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
		f.interrupted = true
		f.cancelled.Store(true)
	}
}

// settle returns the stored error, dropping a context interruption when every
// unit had already finished its chunk.
func (f *failure) settle(allDone bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if allDone && f.interrupted {
		return nil
	}
	return f.err
}
