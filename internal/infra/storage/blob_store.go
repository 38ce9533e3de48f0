// Package storage keeps the durable client state in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"path/filepath"

	"growguard/config"
	"growguard/internal/domain/repository"
	"growguard/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		cfg = &config.StorageConfig{Dir: ".growguard"}
	}

	bucket, err := OpenBucket(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	store := NewBlobStore(bucket)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing client state storage")

			return store.Close()
		},
	})

	return store, nil
}

// OpenBucket opens cfg.URL when set, otherwise a file bucket rooted at cfg.Dir.
func OpenBucket(ctx context.Context, cfg *config.StorageConfig) (*blob.Bucket, error) {
	if cfg.URL != "" {
		bucket, err := blob.OpenBucket(ctx, cfg.URL)
		if err != nil {
			return nil, errors.Wrapf(err, "open bucket %s", cfg.URL)
		}

		return bucket, nil
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "resolve storage dir")
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open file bucket %s", dir)
	}

	return bucket, nil
}

// NewBlobStore adapts an open bucket. The store owns the bucket from then on.
func NewBlobStore(bucket *blob.Bucket) repository.KeyValueStore {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.WithStack(repository.ErrKeyNotFound)
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, nil); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
