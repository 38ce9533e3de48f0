package impl

import (
	"context"
	"log/slog"
	"sync"

	"growguard/config"
	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/domain/entity"
	"growguard/internal/domain/repository"
	"growguard/internal/errors"
	"growguard/internal/usecase"
)

type languageService struct {
	store  repository.KeyValueStore
	logger *slog.Logger

	mu   sync.RWMutex
	lang entity.Language
}

// NewLanguageService restores the stored language, falling back to the configured default.
func NewLanguageService(cfg *config.Config, store repository.KeyValueStore, logger *slog.Logger) usecase.LanguageUsecase {
	lang := entity.LanguageEnglish
	if cfg.Language != nil && entity.Language(cfg.Language.Default).IsValid() {
		lang = entity.Language(cfg.Language.Default)
	}

	srv := &languageService{store: store, logger: logger, lang: lang}

	stored, err := store.Get(context.Background(), repository.KeyAppLanguage)
	switch {
	case err == nil && entity.Language(stored).IsValid():
		srv.lang = entity.Language(stored)
	case err != nil && !errors.Is(err, repository.ErrKeyNotFound):
		logger.Error("Failed to read stored language", slog.Any("error", err))
	}

	return srv
}

func (srv *languageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *languageService) Get() entity.Language {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.lang
}

func (srv *languageService) Set(ctx context.Context, lang entity.Language) (entity.Language, error) {
	if !lang.IsValid() {
		srv.log(ctx).Debug("Ignoring unsupported language", slog.String("language", string(lang)))

		return srv.Get(), nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.lang = lang
	if err := srv.store.Set(ctx, repository.KeyAppLanguage, []byte(lang)); err != nil {
		return lang, errors.Wrap(err, "failed to persist language")
	}

	return lang, nil
}

func (srv *languageService) Toggle(ctx context.Context) (entity.Language, error) {
	return srv.Set(ctx, srv.Get().Toggle())
}
