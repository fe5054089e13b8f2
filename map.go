package parfor

import "context"

// Map applies fn to every element of items with ForEach semantics and returns the
// results in input order. On failure it returns nil results and the first error.
func Map[T, R any](ctx context.Context, items []T, fn func(T) (R, error), opts ...Option) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]R, len(items))
	err := ForEachSlice(ctx, items, func(item *T, idx int) error {
		r, err := fn(*item)
		if err != nil {
			return err
		}
		out[idx] = r
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
