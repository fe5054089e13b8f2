// Package launch provides the facilities parfor uses to start independent units
// of work and wait for them.
package launch

import (
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/panics"
)

// ErrLaunchPanicked is reported by Handle.Wait when a unit panicked past its own recovery.
var ErrLaunchPanicked = errors.New("parfor/launch: unit of work panicked")

// Launcher starts a unit of work and returns a handle to wait on it.
// Implementations must be safe for concurrent use.
type Launcher interface {
	Submit(fn func() error) Handle
}

// Handle resolves once its unit of work has returned.
type Handle interface {
	// Wait blocks until the unit returns and reports its error, if any.
	// It may be called more than once.
	Wait() error
}

type handle struct {
	done chan struct{}
	err  error
}

func newHandle() *handle {
	return &handle{done: make(chan struct{})}
}

func (h *handle) finish(err error) {
	h.err = err
	close(h.done)
}

func (h *handle) Wait() error {
	<-h.done
	return h.err
}

// run executes fn on the calling goroutine, converting an escaped panic into an error.
func run(fn func() error) (err error) {
	if r := panics.Try(func() { err = fn() }); r != nil {
		return fmt.Errorf("%w: %w", ErrLaunchPanicked, r.AsError())
	}
	return err
}
