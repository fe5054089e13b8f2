package parfor

import "container/list"

// Cursor is a copyable position in a forward-only sequence.
// Next must not modify the receiver: earlier positions stay valid.
type Cursor[T any] interface {
	Value() T
	Next() Cursor[T]
	Equal(other Cursor[T]) bool
}

// RandomAccess is a Cursor that can jump and measure in constant time.
// Partitioning uses it to find chunk boundaries without walking the sequence.
type RandomAccess[T any] interface {
	Cursor[T]
	Advance(n int) Cursor[T]
	Distance(to Cursor[T]) int
}

// Distance returns the number of elements in [begin, end).
// It is O(1) for RandomAccess cursors and walks the sequence otherwise.
func Distance[T any](begin, end Cursor[T]) int {
	if ra, ok := begin.(RandomAccess[T]); ok {
		return ra.Distance(end)
	}
	n := 0
	for it := begin; !it.Equal(end); it = it.Next() {
		n++
	}
	return n
}

// Slice returns random-access cursors spanning s. Values are pointers into s,
// so the element function may write through them.
func Slice[E any](s []E) (begin, end Cursor[*E]) {
	return sliceCursor[E]{s: s, i: 0}, sliceCursor[E]{s: s, i: len(s)}
}

type sliceCursor[E any] struct {
	s []E
	i int
}

func (c sliceCursor[E]) Value() *E                { return &c.s[c.i] }
func (c sliceCursor[E]) Next() Cursor[*E]         { return sliceCursor[E]{s: c.s, i: c.i + 1} }
func (c sliceCursor[E]) Advance(n int) Cursor[*E] { return sliceCursor[E]{s: c.s, i: c.i + n} }

func (c sliceCursor[E]) Equal(other Cursor[*E]) bool {
	o, ok := other.(sliceCursor[E])
	return ok && o.i == c.i && c.sameSlice(o)
}

// Distance is O(1) against a cursor over the same slice. Any other cursor is
// searched for by walking, up to the end of c's slice.
func (c sliceCursor[E]) Distance(to Cursor[*E]) int {
	if o, ok := to.(sliceCursor[E]); ok && c.sameSlice(o) {
		return o.i - c.i
	}
	n := 0
	for i := c.i; i < len(c.s) && !to.Equal(sliceCursor[E]{s: c.s, i: i}); i++ {
		n++
	}
	return n
}

func (c sliceCursor[E]) sameSlice(o sliceCursor[E]) bool {
	if len(c.s) != len(o.s) {
		return false
	}
	return len(c.s) == 0 || &c.s[0] == &o.s[0]
}

// List returns forward-only cursors spanning l from front to back.
func List(l *list.List) (begin, end Cursor[*list.Element]) {
	return listCursor{e: l.Front()}, listCursor{}
}

type listCursor struct {
	e *list.Element
}

func (c listCursor) Value() *list.Element        { return c.e }
func (c listCursor) Next() Cursor[*list.Element] { return listCursor{e: c.e.Next()} }

func (c listCursor) Equal(other Cursor[*list.Element]) bool {
	o, ok := other.(listCursor)
	return ok && o.e == c.e
}
