package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"growguard/config"
	"growguard/internal/domain/i18n"
	"growguard/internal/domain/repository"
	"growguard/internal/infra/auth"
	"growguard/internal/infra/storage"
	"growguard/internal/usecase"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemStore(t *testing.T) repository.KeyValueStore {
	t.Helper()

	store := storage.NewBlobStore(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func newTestTable(t *testing.T) *i18n.Table {
	t.Helper()

	table, err := i18n.Default()
	require.NoError(t, err)

	return table
}

func newTestConfig() *config.Config {
	return &config.Config{
		OTP:    &config.OTPConfig{LoginCountdown: 180 * time.Second, RegistrationCountdown: 30 * time.Second},
		Camera: &config.CameraConfig{FallbackDelay: 10 * time.Millisecond},
	}
}

func newTestSession(t *testing.T, store repository.KeyValueStore, nav usecase.NavigatorUsecase) usecase.SessionUsecase {
	t.Helper()

	return NewSessionService(SessionServiceParams{
		Store:     store,
		Navigator: nav,
		Inspector: auth.NewTokenInspector(),
		Logger:    newDiscardLogger(),
	})
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 11, 25, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
