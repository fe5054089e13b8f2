package launch

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func launchers() map[string]func() Launcher {
	return map[string]func() Launcher{
		"goroutines": Goroutines,
		"bounded":    func() Launcher { return Bounded(2) },
		"unbounded":  func() Launcher { return Bounded(0) },
	}
}

func TestLauncher_WaitReportsUnitError(t *testing.T) {
	t.Parallel()

	errUnit := errors.New("unit failed")
	for name, mk := range launchers() {
		t.Run(name, func(t *testing.T) {
			l := mk()
			ok := l.Submit(func() error { return nil })
			failed := l.Submit(func() error { return errUnit })

			require.NoError(t, ok.Wait())
			require.ErrorIs(t, failed.Wait(), errUnit)
			require.ErrorIs(t, failed.Wait(), errUnit, "Wait is repeatable")
		})
	}
}

func TestLauncher_PanicReported(t *testing.T) {
	t.Parallel()

	for name, mk := range launchers() {
		t.Run(name, func(t *testing.T) {
			h := mk().Submit(func() error { panic("escaped") })
			err := h.Wait()
			require.ErrorIs(t, err, ErrLaunchPanicked)
			require.Contains(t, err.Error(), "escaped")
		})
	}
}

func TestLauncher_WaitBlocksUntilDone(t *testing.T) {
	t.Parallel()

	for name, mk := range launchers() {
		t.Run(name, func(t *testing.T) {
			release := make(chan struct{})
			var finished atomic.Bool
			h := mk().Submit(func() error {
				<-release
				finished.Store(true)
				return nil
			})

			waited := make(chan error, 1)
			go func() { waited <- h.Wait() }()

			select {
			case <-waited:
				t.Fatalf("Wait returned before the unit finished")
			case <-time.After(50 * time.Millisecond):
			}

			close(release)
			select {
			case err := <-waited:
				require.NoError(t, err)
				require.True(t, finished.Load())
			case <-time.After(time.Second):
				t.Fatalf("Wait did not return after the unit finished")
			}
		})
	}
}

func TestBounded_LimitsConcurrency(t *testing.T) {
	t.Parallel()

	const limit = 3
	l := Bounded(limit)

	var running, peak atomic.Int32
	var mu sync.Mutex
	handles := make([]Handle, 0, 20)
	for i := 0; i < 20; i++ {
		h := l.Submit(func() error {
			n := running.Add(1)
			mu.Lock()
			if n > peak.Load() {
				peak.Store(n)
			}
			mu.Unlock()
			time.Sleep(2 * time.Millisecond)
			running.Add(-1)
			return nil
		})
		handles = append(handles, h)
	}
	for _, h := range handles {
		require.NoError(t, h.Wait())
	}
	require.LessOrEqual(t, peak.Load(), int32(limit))
	require.Positive(t, peak.Load())
}

func TestBounded_UnitErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	l := Bounded(1)
	failed := l.Submit(func() error { return errors.New("first") })
	var ran atomic.Bool
	next := l.Submit(func() error { ran.Store(true); return nil })

	require.Error(t, failed.Wait())
	require.NoError(t, next.Wait())
	require.True(t, ran.Load())
}
