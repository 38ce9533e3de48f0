package usecase

import (
	"context"

	"growguard/internal/domain/entity"
)

// LanguageUsecase holds the persisted display language.
type LanguageUsecase interface {
	Get() entity.Language
	// Set switches to lang. Unsupported codes are ignored and the current language returned.
	Set(ctx context.Context, lang entity.Language) (entity.Language, error)
	Toggle(ctx context.Context) (entity.Language, error)
}
