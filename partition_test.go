package parfor

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition_TableDriven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		threads int
		want    []Chunk
	}{
		{name: "empty range", size: 0, threads: 4, want: nil},
		{name: "no threads", size: 10, threads: 0, want: nil},
		{name: "even split", size: 8, threads: 4, want: []Chunk{
			{Begin: 0, End: 2, Offset: 0, Worker: 0},
			{Begin: 2, End: 4, Offset: 2, Worker: 1},
			{Begin: 4, End: 6, Offset: 4, Worker: 2},
			{Begin: 6, End: 8, Offset: 6, Worker: 3},
		}},
		{name: "last chunk takes remainder", size: 10, threads: 3, want: []Chunk{
			{Begin: 0, End: 3, Offset: 0, Worker: 0},
			{Begin: 3, End: 6, Offset: 3, Worker: 1},
			{Begin: 6, End: 10, Offset: 6, Worker: 2},
		}},
		{name: "threads reduced to size", size: 2, threads: 8, want: []Chunk{
			{Begin: 0, End: 1, Offset: 0, Worker: 0},
			{Begin: 1, End: 2, Offset: 1, Worker: 1},
		}},
		{name: "single thread", size: 5, threads: 1, want: []Chunk{
			{Begin: 0, End: 5, Offset: 0, Worker: 0},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Partition(tt.size, tt.threads))
		})
	}
}

func TestPartition_CoversRangeExactlyOnce(t *testing.T) {
	t.Parallel()

	for size := 1; size <= 130; size++ {
		for threads := 1; threads <= 17; threads++ {
			chunks := Partition(size, threads)
			require.Len(t, chunks, min(size, threads))

			chunkSize := size / len(chunks)
			next := 0
			for i, c := range chunks {
				require.Equal(t, i, c.Worker)
				require.Equal(t, next, c.Begin, "gap or overlap at size=%d threads=%d", size, threads)
				require.Equal(t, c.Begin, c.Offset)
				require.Positive(t, c.Len())
				if i < len(chunks)-1 {
					require.Equal(t, chunkSize, c.Len())
				}
				next = c.End
			}
			require.Equal(t, size, next)
		}
	}
}

// forward is a cursor over ints without random access; it counts every step taken.
type forward struct {
	s     []int
	i     int
	steps *int
}

func (c forward) Value() int { return c.s[c.i] }

func (c forward) Next() Cursor[int] {
	*c.steps++
	return forward{s: c.s, i: c.i + 1, steps: c.steps}
}

func (c forward) Equal(other Cursor[int]) bool { return other.(forward).i == c.i }

func TestSplit_ForwardCursorWalksOnce(t *testing.T) {
	t.Parallel()

	s := make([]int, 103)
	steps := 0
	begin := forward{s: s, i: 0, steps: &steps}
	end := forward{s: s, i: len(s), steps: &steps}

	chunks := Partition(len(s), 4)
	spans := split[int](begin, end, chunks)

	require.Len(t, spans, 4)
	for i, sp := range spans {
		require.Equal(t, chunks[i].Begin, sp.begin.(forward).i)
		require.Equal(t, chunks[i].End, sp.end.(forward).i)
	}
	// The last boundary is the end cursor itself, so only the first three chunks are walked.
	require.Equal(t, 3*(len(s)/4), steps)
}

func TestSplit_RandomAccessMatchesPartition(t *testing.T) {
	t.Parallel()

	s := make([]string, 2048)
	begin, end := Slice(s)
	chunks := Partition(Distance(begin, end), 4)
	spans := split(begin, end, chunks)

	for i, sp := range spans {
		require.Equal(t, chunks[i].Begin, sp.begin.(sliceCursor[string]).i)
		require.Equal(t, chunks[i].End, sp.end.(sliceCursor[string]).i)
		require.Equal(t, 512, Distance(sp.begin, sp.end))
	}
}

func TestDistance_List(t *testing.T) {
	t.Parallel()

	l := list.New()
	begin, end := List(l)
	require.Equal(t, 0, Distance(begin, end))

	for i := 0; i < 7; i++ {
		l.PushBack(i)
	}
	begin, end = List(l)
	require.Equal(t, 7, Distance(begin, end))
	require.Equal(t, 0, begin.Value().Value)
}

func TestSliceCursor_DifferentSlices(t *testing.T) {
	t.Parallel()

	a, b := make([]int, 5), make([]int, 5)
	beginA, endA := Slice(a)
	_, endB := Slice(b)

	require.True(t, endA.Equal(beginA.(RandomAccess[*int]).Advance(5)))
	require.False(t, endA.Equal(endB), "same position in another slice")
	require.Equal(t, 5, Distance(beginA, endA))
	require.Equal(t, 5, Distance(beginA, endB), "a foreign end is searched for up to the end of the slice")

	var empty []int
	e1, _ := Slice(empty)
	_, e2 := Slice([]int{})
	require.True(t, e1.Equal(e2), "empty slices hold no elements to tell apart")
}
