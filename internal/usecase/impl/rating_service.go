package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/service"
	"growguard/internal/errors"
	"growguard/internal/usecase"
)

type ratingService struct {
	gateway   service.Gateway
	validator service.Validator
	logger    *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(gateway service.Gateway, validator service.Validator, logger *slog.Logger) usecase.RatingUsecase {
	return &ratingService{gateway: gateway, validator: validator, logger: logger}
}

func (srv *ratingService) Submit(ctx context.Context, rating *entity.Rating) error {
	if rating == nil || rating.Stars == 0 {
		return errors.WithStack(domainerrors.NewValidationError("rating", "Please select a rating"))
	}
	if err := srv.validator.Validate(rating); err != nil {
		return err
	}

	submitted := &entity.Rating{Stars: rating.Stars, Feedback: strings.TrimSpace(rating.Feedback)}
	if err := srv.gateway.SubmitRating(ctx, submitted); err != nil {
		return errors.Wrap(err, "failed to submit rating")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Rating submitted", slog.Int("stars", submitted.Stars))

	return nil
}
