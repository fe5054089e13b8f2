package parfor

import (
	"errors"
	"fmt"
)

// ChunkMetaError exposes where in the range a failure happened.
// Errors returned with WithErrorTagging enabled implement it.
type ChunkMetaError interface {
	error
	Unwrap() error
	Worker() int
	Index() int
}

type chunkError struct {
	err    error
	worker int
	index  int
}

func newChunkError(err error, worker, index int) error {
	if err == nil {
		return nil
	}
	return &chunkError{err: err, worker: worker, index: index}
}

func (e *chunkError) Error() string { return e.err.Error() }
func (e *chunkError) Unwrap() error { return e.err }
func (e *chunkError) Worker() int   { return e.worker }
func (e *chunkError) Index() int    { return e.index }

func (e *chunkError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "worker(%d) index(%d): %+v", e.worker, e.index, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractWorker returns the id of the worker that failed, if err carries it.
func ExtractWorker(err error) (int, bool) {
	var cme ChunkMetaError
	if errors.As(err, &cme) {
		return cme.Worker(), true
	}
	return 0, false
}

// ExtractIndex returns the global index of the element that failed, if err carries it.
func ExtractIndex(err error) (int, bool) {
	var cme ChunkMetaError
	if errors.As(err, &cme) {
		return cme.Index(), true
	}
	return 0, false
}
