package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	fileID := uuid.New()

	path, err := store.Upload(ctx, fileID, "hiree signature.png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)
	assert.Contains(t, path, fileID.String())
	assert.NotContains(t, path, " ")

	rc, err := store.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Delete(ctx, path))
	_, err = store.Download(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	// deleting a missing file is not an error
	assert.NoError(t, store.Delete(ctx, path))
}

func TestDecodeDataURL(t *testing.T) {
	data, ext, err := DecodeDataURL("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, ".png", ext)

	_, ext, err = DecodeDataURL("data:image/jpeg;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)

	_, _, err = DecodeDataURL("not a data url")
	assert.ErrorIs(t, err, ErrInvalidDataURL)

	_, _, err = DecodeDataURL("data:image/png,plainpayload")
	assert.ErrorIs(t, err, ErrInvalidDataURL)

	_, _, err = DecodeDataURL("data:text/html;base64,aGVsbG8=")
	assert.ErrorIs(t, err, ErrInvalidDataURL)

	_, _, err = DecodeDataURL("data:image/png;base64,!!!")
	assert.ErrorIs(t, err, ErrInvalidDataURL)
}

func TestGenerateStoragePath(t *testing.T) {
	fileID := uuid.New()
	path := generateStoragePath(fileID, "company logo/v2.png")
	assert.Equal(t, fileID.String()[:2], path[:2])
	assert.Contains(t, path, "company_logo_v2.png")
}
