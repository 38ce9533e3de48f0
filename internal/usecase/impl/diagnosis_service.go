package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"growguard/config"
	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/service"
	"growguard/internal/errors"
	"growguard/internal/usecase"
	"growguard/internal/util"

	"go.uber.org/fx"
)

const (
	captureFailedMessage = "Failed to capture image"
	uploadFailedMessage  = "Failed to upload image. Please try again."
)

// DiagnosisServiceParams holds dependencies for the scan screen, injected by Fx.
type DiagnosisServiceParams struct {
	fx.In

	Config    *config.Config
	Camera    service.Camera
	Gateway   service.Gateway
	Reports   usecase.ReportUsecase
	Navigator usecase.NavigatorUsecase
	Logger    *slog.Logger
}

// diagnosisService implements the DiagnosisUsecase interface.
type diagnosisService struct {
	camera        service.Camera
	gateway       service.Gateway
	reports       usecase.ReportUsecase
	navigator     usecase.NavigatorUsecase
	fallbackDelay time.Duration
	logger        *slog.Logger

	uploading atomic.Bool

	mu     sync.Mutex
	view   usecase.ScanView
	stream service.CameraStream
}

// NewDiagnosisService is the constructor for diagnosisService.
func NewDiagnosisService(params DiagnosisServiceParams) usecase.DiagnosisUsecase {
	srv := &diagnosisService{
		camera:        params.Camera,
		gateway:       params.Gateway,
		reports:       params.Reports,
		navigator:     params.Navigator,
		fallbackDelay: time.Second,
		logger:        params.Logger,
		view:          usecase.ScanView{Mode: usecase.CaptureModeIdle},
	}
	if cfg := params.Config.Camera; cfg != nil && cfg.FallbackDelay >= 0 {
		srv.fallbackDelay = cfg.FallbackDelay
	}

	return srv
}

func (srv *diagnosisService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *diagnosisService) View() usecase.ScanView {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	view := srv.view
	view.Uploading = srv.uploading.Load()

	return view
}

func (srv *diagnosisService) OpenCamera(ctx context.Context) (usecase.ScanView, error) {
	srv.mu.Lock()
	if srv.stream != nil {
		srv.mu.Unlock()

		return srv.View(), nil
	}
	srv.mu.Unlock()

	stream, err := srv.camera.Open(ctx)
	if err != nil {
		srv.log(ctx).Warn("Camera unavailable, falling back to file picker", slog.Any("error", err))

		timer := time.NewTimer(srv.fallbackDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return srv.View(), errors.Wrap(ctx.Err(), "camera fallback interrupted")
		case <-timer.C:
		}

		srv.mu.Lock()
		srv.view.Mode = usecase.CaptureModeFilePicker
		srv.view.Err = domainerrors.UserMessage(err, domainerrors.ErrCameraUnavailable.Message())
		srv.mu.Unlock()

		return srv.View(), errors.Wrap(err, "failed to open camera")
	}

	srv.mu.Lock()
	if srv.stream != nil {
		// Another request opened it first.
		srv.mu.Unlock()
		_ = stream.Close()

		return srv.View(), nil
	}
	srv.stream = stream
	srv.view.Mode = usecase.CaptureModeCamera
	srv.view.Err = ""
	srv.mu.Unlock()

	return srv.View(), nil
}

func (srv *diagnosisService) Capture(ctx context.Context) (*entity.Report, error) {
	stream := srv.takeStream()
	if stream == nil {
		return nil, errors.WithStack(domainerrors.ErrCameraNotOpen)
	}

	image, err := stream.Capture(ctx)
	if closeErr := stream.Close(); closeErr != nil {
		srv.log(ctx).Warn("Failed to release camera", slog.Any("error", closeErr))
	}
	if err != nil {
		srv.setErr(captureFailedMessage)

		return nil, errors.Wrap(err, "failed to capture image")
	}

	return srv.Upload(ctx, image)
}

func (srv *diagnosisService) CloseCamera(ctx context.Context) error {
	stream := srv.takeStream()
	if stream == nil {
		return nil
	}

	if err := stream.Close(); err != nil {
		return errors.Wrap(err, "failed to release camera")
	}
	srv.log(ctx).Debug("Camera released")

	return nil
}

func (srv *diagnosisService) Upload(ctx context.Context, image *entity.Image) (*entity.Report, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, errors.WithStack(domainerrors.NewValidationError("image", "Please select an image"))
	}
	if !srv.uploading.CompareAndSwap(false, true) {
		return nil, errors.WithStack(domainerrors.ErrRequestInFlight.WithDetails("upload"))
	}
	defer srv.uploading.Store(false)

	srv.setErr("")
	srv.log(ctx).Info("Uploading plant image",
		slog.String("filename", image.Filename),
		slog.String("size", util.FormatBytes(int64(len(image.Data)))),
	)

	report, err := srv.gateway.UploadScan(ctx, image)
	if ctxErr := ctx.Err(); ctxErr != nil {
		// The user left the screen; the late result is dropped.
		return nil, errors.Wrap(ctxErr, "upload abandoned")
	}
	if err != nil {
		srv.setErr(domainerrors.UserMessage(err, uploadFailedMessage))

		return nil, errors.Wrap(err, "failed to upload image")
	}

	srv.reports.SetCurrent(report)
	srv.navigator.Navigate(entity.RouteDiagnosisReport, "")

	return report.Clone(), nil
}

// takeStream detaches the open stream, returning the screen to idle.
func (srv *diagnosisService) takeStream() service.CameraStream {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	stream := srv.stream
	srv.stream = nil
	if srv.view.Mode == usecase.CaptureModeCamera {
		srv.view.Mode = usecase.CaptureModeIdle
	}

	return stream
}

func (srv *diagnosisService) setErr(msg string) {
	srv.mu.Lock()
	srv.view.Err = msg
	srv.mu.Unlock()
}
