package service

import (
	"context"

	"growguard/internal/domain/entity"
)

// ImageSource serves uploaded report images by filename.
type ImageSource interface {
	Image(ctx context.Context, filename string) (*entity.Image, error)
	// Forget drops a cached image, e.g. after its report was deleted.
	Forget(filename string)
}
