package launch

import "golang.org/x/sync/errgroup"

type bounded struct {
	g errgroup.Group
}

// Bounded returns a Launcher that runs at most n units at the same time.
// Submit blocks while n units are running. A non-positive n removes the limit.
//
// Unit errors are delivered through their handles only; they never cancel
// other units started by the same launcher.
func Bounded(n int) Launcher {
	b := &bounded{}
	if n > 0 {
		b.g.SetLimit(n)
	}
	return b
}

func (b *bounded) Submit(fn func() error) Handle {
	h := newHandle()
	b.g.Go(func() error {
		h.finish(run(fn))
		return nil
	})
	return h
}
