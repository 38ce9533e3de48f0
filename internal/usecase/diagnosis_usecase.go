package usecase

import (
	"context"

	"growguard/internal/domain/entity"
)

// CaptureMode is how the scan screen acquires an image.
type CaptureMode string

const (
	CaptureModeIdle       CaptureMode = "idle"
	CaptureModeCamera     CaptureMode = "camera"
	CaptureModeFilePicker CaptureMode = "filePicker"
)

// ScanView is the state of the scan screen.
type ScanView struct {
	Mode      CaptureMode `json:"mode"`
	Uploading bool        `json:"uploading"`
	Err       string      `json:"error,omitempty"`
}

// DiagnosisUsecase acquires a plant image and submits it for diagnosis.
type DiagnosisUsecase interface {
	View() ScanView
	// OpenCamera acquires the camera. When it cannot, the view switches to the file
	// picker after the fallback delay and the camera error is returned.
	OpenCamera(ctx context.Context) (ScanView, error)
	// Capture takes one frame, releases the camera and uploads the frame.
	Capture(ctx context.Context) (*entity.Report, error)
	CloseCamera(ctx context.Context) error
	// Upload submits an image; only one upload may be in flight. On success the result
	// becomes the current report and the client navigates to the report screen.
	Upload(ctx context.Context, image *entity.Image) (*entity.Report, error)
}
