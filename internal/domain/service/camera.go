package service

import (
	"context"

	"growguard/internal/domain/entity"
)

// Camera acquires exclusive access to a capture device.
// Open fails with errors.ErrCameraPermissionDenied, errors.ErrCameraNotFound or
// errors.ErrCameraUnavailable from the domain errors package.
type Camera interface {
	Open(ctx context.Context) (CameraStream, error)
}

// CameraStream is an open capture session. Close must be called on every exit path
// and is safe to call more than once.
type CameraStream interface {
	// Capture takes one still frame encoded as JPEG.
	Capture(ctx context.Context) (*entity.Image, error)
	Close() error
}
