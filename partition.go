package parfor

// Chunk is the contiguous share [Begin, End) of one worker, in element positions
// of the full range. Offset is the global index of the chunk's first element.
type Chunk struct {
	Begin  int
	End    int
	Offset int
	Worker int
}

// Len returns the number of elements in the chunk.
func (c Chunk) Len() int { return c.End - c.Begin }

// Partition splits size elements among threads workers.
//
// The worker count is reduced to size so that no chunk is empty. Every chunk but
// the last holds size/threads elements; the last one also takes the remainder.
// A zero size (or non-positive threads) yields no chunks.
func Partition(size, threads int) []Chunk {
	if size <= 0 || threads <= 0 {
		return nil
	}
	threads = min(threads, size)
	chunkSize := size / threads

	chunks := make([]Chunk, threads)
	for i := range chunks {
		begin := i * chunkSize
		end := begin + chunkSize
		if i == threads-1 {
			end = size
		}
		chunks[i] = Chunk{Begin: begin, End: end, Offset: begin, Worker: i}
	}
	return chunks
}

// span binds a chunk to cursors in the caller's sequence.
type span[T any] struct {
	Chunk
	begin Cursor[T]
	end   Cursor[T]
}

// split places chunk boundaries on the sequence [begin, end).
// Random-access cursors jump to each boundary; forward cursors walk from the
// previous boundary, so the whole sequence is traversed at most once.
// The last chunk always ends at end.
func split[T any](begin, end Cursor[T], chunks []Chunk) []span[T] {
	spans := make([]span[T], len(chunks))
	ra, random := begin.(RandomAccess[T])

	from := begin
	for i, c := range chunks {
		var to Cursor[T]
		switch {
		case i == len(chunks)-1:
			to = end
		case random:
			to = ra.Advance(c.End)
		default:
			to = from
			for n := c.Len(); n > 0 && !to.Equal(end); n-- {
				to = to.Next()
			}
		}
		spans[i] = span[T]{Chunk: c, begin: from, end: to}
		from = to
	}
	return spans
}
