package launch

type goroutines struct{}

// Goroutines returns a Launcher that runs every unit on a fresh goroutine.
func Goroutines() Launcher { return goroutines{} }

func (goroutines) Submit(fn func() error) Handle {
	h := newHandle()
	go func() { h.finish(run(fn)) }()
	return h
}
