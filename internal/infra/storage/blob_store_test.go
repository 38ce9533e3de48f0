package storage

import (
	"context"
	"testing"

	"growguard/config"
	"growguard/internal/domain/repository"
	"growguard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewBlobStore(memblob.OpenBucket(nil))
	defer store.Close()

	_, err := store.Get(ctx, repository.KeyAuthToken)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))

	require.NoError(t, store.Set(ctx, repository.KeyAuthToken, []byte("tok")))
	got, err := store.Get(ctx, repository.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok"), got)

	require.NoError(t, store.Set(ctx, repository.KeyAuthToken, []byte("tok2")))
	got, err = store.Get(ctx, repository.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok2"), got)

	require.NoError(t, store.Delete(ctx, repository.KeyAuthToken))
	require.NoError(t, store.Delete(ctx, repository.KeyAuthToken))
	_, err = store.Get(ctx, repository.KeyAuthToken)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))
}

func TestOpenBucket_FileDirSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := &config.StorageConfig{Dir: t.TempDir()}

	bucket, err := OpenBucket(ctx, cfg)
	require.NoError(t, err)
	store := NewBlobStore(bucket)
	require.NoError(t, store.Set(ctx, repository.KeyAppLanguage, []byte("ur")))
	require.NoError(t, store.Close())

	bucket, err = OpenBucket(ctx, cfg)
	require.NoError(t, err)
	reopened := NewBlobStore(bucket)
	defer reopened.Close()

	got, err := reopened.Get(ctx, repository.KeyAppLanguage)
	require.NoError(t, err)
	assert.Equal(t, "ur", string(got))
}

func TestOpenBucket_MemURL(t *testing.T) {
	bucket, err := OpenBucket(context.Background(), &config.StorageConfig{URL: "mem://"})
	require.NoError(t, err)
	assert.NoError(t, bucket.Close())
}
