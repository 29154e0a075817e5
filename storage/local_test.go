package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	documentID := uuid.New()

	path, err := store.Upload(ctx, documentID, "prop 47 analysis.pdf", strings.NewReader("bill text"))
	require.NoError(t, err)
	assert.NotContains(t, path, " ")

	reader, err := store.Download(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "bill text", string(data))

	require.NoError(t, store.Delete(ctx, path))

	_, err = store.Download(ctx, path)
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "does/not/exist.pdf"))
}

func TestGenerateStoragePathUniqueness(t *testing.T) {
	a := generateStoragePath(uuid.New(), "report.pdf")
	b := generateStoragePath(uuid.New(), "report.pdf")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".pdf"))
}
