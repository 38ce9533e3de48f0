package usecase

import (
	"context"

	"growguard/internal/domain/entity"
)

// RatingUsecase submits app feedback from the dashboard.
type RatingUsecase interface {
	Submit(ctx context.Context, rating *entity.Rating) error
}
