package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"growguard/internal/domain/entity"
	"growguard/internal/domain/repository"
	"growguard/internal/errors"
	mockRepo "growguard/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_EstablishSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)
	navigator := NewNavigatorService(newDiscardLogger())
	session := newTestSession(t, store, navigator)

	_, err := session.Establish(ctx, "token-1", &entity.User{ID: 1, Name: "Ali"})
	require.NoError(t, err)

	restored := newTestSession(t, store, navigator)
	require.True(t, restored.IsAuthenticated())
	assert.Equal(t, "token-1", restored.Token())
	assert.Equal(t, "Ali", restored.Current().User.Name)
}

func TestSessionService_CurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t, newMemStore(t), NewNavigatorService(newDiscardLogger()))

	_, err := session.Establish(ctx, "token-1", &entity.User{Name: "Ali"})
	require.NoError(t, err)

	current := session.Current()
	current.User.Name = "changed"
	assert.Equal(t, "Ali", session.Current().User.Name)
}

func TestSessionService_ExpireOnlyClearsMatchingToken(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)
	navigator := NewNavigatorService(newDiscardLogger())
	session := newTestSession(t, store, navigator)

	_, err := session.Establish(ctx, "token-2", &entity.User{ID: 2})
	require.NoError(t, err)
	navigator.Navigate(entity.RouteDashboard, "")

	assert.False(t, session.Expire(ctx, "token-1"))
	assert.False(t, session.Expire(ctx, ""))
	assert.True(t, session.IsAuthenticated())

	assert.True(t, session.Expire(ctx, "token-2"))
	assert.False(t, session.IsAuthenticated())
	assert.Equal(t, entity.RouteLogin, navigator.Current().Route)

	_, err = store.Get(ctx, repository.KeyAuthToken)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))
	_, err = store.Get(ctx, repository.KeyUserData)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))
}

func TestSessionService_ConcurrentExpireClearsOnce(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t, newMemStore(t), NewNavigatorService(newDiscardLogger()))

	_, err := session.Establish(ctx, "token-1", nil)
	require.NoError(t, err)

	var cleared atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if session.Expire(ctx, "token-1") {
				cleared.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), cleared.Load())
	assert.Nil(t, session.Current())
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()
	navigator := NewNavigatorService(newDiscardLogger())
	session := newTestSession(t, newMemStore(t), navigator)

	_, err := session.Establish(ctx, "token-1", &entity.User{ID: 1})
	require.NoError(t, err)
	navigator.Navigate(entity.RouteProfile, "")

	require.NoError(t, session.Logout(ctx))
	assert.False(t, session.IsAuthenticated())
	assert.Equal(t, entity.RouteLogin, navigator.Current().Route)
}

func TestSessionService_UpdateUserRequiresSession(t *testing.T) {
	session := newTestSession(t, newMemStore(t), NewNavigatorService(newDiscardLogger()))

	assert.Error(t, session.UpdateUser(context.Background(), &entity.User{ID: 1}))
}

func TestSessionService_PersistFailureKeepsSessionInMemory(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockKeyValueStore(t)
	store.EXPECT().Get(mock.Anything, repository.KeyAuthToken).Return(nil, repository.ErrKeyNotFound).Once()
	store.EXPECT().Set(mock.Anything, repository.KeyAuthToken, []byte("token-1")).Return(errors.New("disk full")).Once()

	session := newTestSession(t, store, NewNavigatorService(newDiscardLogger()))
	current, err := session.Establish(ctx, "token-1", nil)

	require.Error(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "token-1", current.Token)
	assert.True(t, session.IsAuthenticated())
}
