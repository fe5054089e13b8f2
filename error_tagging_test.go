package parfor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkError_Metadata(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := newChunkError(cause, 2, 1024)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "boom", err.Error())

	worker, ok := ExtractWorker(err)
	require.True(t, ok)
	require.Equal(t, 2, worker)

	index, ok := ExtractIndex(fmt.Errorf("wrapped: %w", err))
	require.True(t, ok)
	require.Equal(t, 1024, index)
}

func TestChunkError_Format(t *testing.T) {
	t.Parallel()

	err := newChunkError(errors.New("boom"), 1, 7)
	require.Equal(t, "boom", fmt.Sprintf("%v", err))
	require.Equal(t, "boom", fmt.Sprintf("%s", err))
	require.Equal(t, `"boom"`, fmt.Sprintf("%q", err))
	require.Equal(t, "worker(1) index(7): boom", fmt.Sprintf("%+v", err))
}

func TestChunkError_NilAndUntagged(t *testing.T) {
	t.Parallel()

	require.NoError(t, newChunkError(nil, 0, 0))

	_, ok := ExtractWorker(errors.New("plain"))
	require.False(t, ok)
	_, ok = ExtractIndex(nil)
	require.False(t, ok)
}
