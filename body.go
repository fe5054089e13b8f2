package parfor

// Body is the set of element functions ForEach accepts. Besides the element
// they may take its global index, and the worker id after that. Returning a
// non-nil error stops the whole call.
type Body[T any] interface {
	func(T) |
		func(T) error |
		func(T, int) |
		func(T, int) error |
		func(T, int, int) |
		func(T, int, int) error
}

// IndexBody is the set of index functions ForEachIndex and ForEachStatic accept:
// the index, optionally followed by the worker id.
type IndexBody[T Integer] interface {
	func(T) |
		func(T) error |
		func(T, int) |
		func(T, int) error
}

// call is the single shape every Body is adapted to before the workers start.
type call[T any] func(v T, index, worker int) error

func bindBody[T any, F Body[T]](f F) call[T] {
	switch fn := any(f).(type) {
	case func(T):
		return func(v T, _, _ int) error { fn(v); return nil }
	case func(T) error:
		return func(v T, _, _ int) error { return fn(v) }
	case func(T, int):
		return func(v T, index, _ int) error { fn(v, index); return nil }
	case func(T, int) error:
		return func(v T, index, _ int) error { return fn(v, index) }
	case func(T, int, int):
		return func(v T, index, worker int) error { fn(v, index, worker); return nil }
	case func(T, int, int) error:
		return fn
	}
	panic("parfor: unsupported element function shape")
}

func bindIndexBody[T Integer, F IndexBody[T]](f F) call[T] {
	switch fn := any(f).(type) {
	case func(T):
		return func(v T, _, _ int) error { fn(v); return nil }
	case func(T) error:
		return func(v T, _, _ int) error { return fn(v) }
	case func(T, int):
		return func(v T, _, worker int) error { fn(v, worker); return nil }
	case func(T, int) error:
		return func(v T, _, worker int) error { return fn(v, worker) }
	}
	panic("parfor: unsupported index function shape")
}
