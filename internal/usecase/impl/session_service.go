package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/domain/entity"
	"growguard/internal/domain/repository"
	"growguard/internal/domain/service"
	"growguard/internal/errors"
	"growguard/internal/usecase"

	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for the session store, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store     repository.KeyValueStore
	Navigator usecase.NavigatorUsecase
	Inspector service.TokenInspector
	Logger    *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store     repository.KeyValueStore
	navigator usecase.NavigatorUsecase
	inspector service.TokenInspector
	logger    *slog.Logger

	mu      sync.RWMutex
	session *entity.Session
}

// NewSessionService restores the persisted session, if any.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := &sessionService{
		store:     params.Store,
		navigator: params.Navigator,
		inspector: params.Inspector,
		logger:    params.Logger,
	}
	srv.restore(context.Background())

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) restore(ctx context.Context) {
	token, err := srv.store.Get(ctx, repository.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			srv.log(ctx).Error("Failed to read stored token", slog.Any("error", err))
		}

		return
	}
	if len(token) == 0 {
		return
	}

	session := &entity.Session{Token: string(token), ExpiresAt: srv.inspector.ExpiresAt(string(token))}

	data, err := srv.store.Get(ctx, repository.KeyUserData)
	switch {
	case err == nil:
		var user entity.User
		if err := json.Unmarshal(data, &user); err != nil {
			srv.log(ctx).Warn("Discarding unreadable stored profile", slog.Any("error", err))
		} else {
			session.User = &user
		}
	case !errors.Is(err, repository.ErrKeyNotFound):
		srv.log(ctx).Error("Failed to read stored profile", slog.Any("error", err))
	}

	srv.session = session
	srv.log(ctx).Info("Restored session", slog.Bool("has_profile", session.User != nil))
}

func (srv *sessionService) Current() *entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.session == nil {
		return nil
	}
	c := *srv.session
	c.User = srv.session.User.Clone()

	return &c
}

func (srv *sessionService) IsAuthenticated() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.session.Authenticated()
}

func (srv *sessionService) Token() string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.session == nil {
		return ""
	}

	return srv.session.Token
}

func (srv *sessionService) Establish(ctx context.Context, token string, user *entity.User) (*entity.Session, error) {
	if token == "" {
		return nil, errors.New("session token is empty")
	}

	srv.mu.Lock()
	srv.session = &entity.Session{
		Token:     token,
		User:      user.Clone(),
		ExpiresAt: srv.inspector.ExpiresAt(token),
	}
	err := srv.persist(ctx, srv.session)
	srv.mu.Unlock()

	srv.log(ctx).Info("Session established")
	if err != nil {
		return srv.Current(), errors.Wrap(err, "failed to persist session")
	}

	return srv.Current(), nil
}

func (srv *sessionService) UpdateUser(ctx context.Context, user *entity.User) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.session.Authenticated() {
		return errors.New("no session to update")
	}
	srv.session.User = user.Clone()

	return srv.persistUser(ctx, srv.session.User)
}

func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	srv.session = nil
	err := srv.erase(ctx)
	srv.mu.Unlock()

	srv.navigator.ForceLogin()
	srv.log(ctx).Info("Logged out")

	return err
}

// Expire clears the session only while it still holds token, so concurrent authorization
// failures of the same session clear and redirect once.
func (srv *sessionService) Expire(ctx context.Context, token string) bool {
	srv.mu.Lock()
	if token == "" || srv.session == nil || srv.session.Token != token {
		srv.mu.Unlock()

		return false
	}
	srv.session = nil
	if err := srv.erase(ctx); err != nil {
		srv.log(ctx).Error("Failed to erase expired session", slog.Any("error", err))
	}
	srv.mu.Unlock()

	srv.navigator.ForceLogin()

	return true
}

func (srv *sessionService) persist(ctx context.Context, session *entity.Session) error {
	if err := srv.store.Set(ctx, repository.KeyAuthToken, []byte(session.Token)); err != nil {
		return err
	}

	return srv.persistUser(ctx, session.User)
}

func (srv *sessionService) persistUser(ctx context.Context, user *entity.User) error {
	if user == nil {
		return srv.store.Delete(ctx, repository.KeyUserData)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "failed to encode profile")
	}

	return srv.store.Set(ctx, repository.KeyUserData, data)
}

func (srv *sessionService) erase(ctx context.Context) error {
	return errors.Join(
		srv.store.Delete(ctx, repository.KeyAuthToken),
		srv.store.Delete(ctx, repository.KeyUserData),
	)
}
