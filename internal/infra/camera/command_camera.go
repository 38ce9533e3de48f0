// Package camera captures still images by running an external capture command that
// writes one JPEG frame to stdout, e.g. "fswebcam --no-banner -".
package camera

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"growguard/config"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/service"
	"growguard/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/fx"
)

// Params are the dependencies of the command camera.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// CommandCamera implements service.Camera on top of a capture command.
type CommandCamera struct {
	command string
	args    []string
	logger  *slog.Logger
	now     func() time.Time

	open atomic.Int32
}

// New creates the camera from configuration.
func New(p Params) service.Camera {
	cfg := p.Config.Camera
	if cfg == nil {
		cfg = &config.CameraConfig{}
	}

	return NewCommandCamera(cfg.Command, cfg.Args, p.Logger)
}

// NewCommandCamera creates a camera running command with args for every capture.
func NewCommandCamera(command string, args []string, logger *slog.Logger) *CommandCamera {
	if logger == nil {
		logger = slog.Default()
	}

	return &CommandCamera{
		command: strings.TrimSpace(command),
		args:    args,
		logger:  logger,
		now:     time.Now,
	}
}

// Open resolves the capture command. A missing command reports ErrCameraNotFound and an
// unexecutable one ErrCameraPermissionDenied, so callers can fall back to a file picker.
func (c *CommandCamera) Open(ctx context.Context) (service.CameraStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if c.command == "" {
		return nil, errors.WithStack(domainerrors.ErrCameraNotFound.WithDetails("no capture command configured"))
	}

	path, err := exec.LookPath(c.command)
	if err != nil {
		return nil, classify(err)
	}

	c.open.Add(1)
	c.logger.Debug("Camera opened", slog.String("command", path))

	return &stream{camera: c, path: path}, nil
}

// OpenStreams is the number of streams not yet closed.
func (c *CommandCamera) OpenStreams() int {
	return int(c.open.Load())
}

type stream struct {
	camera *CommandCamera
	path   string

	mu     sync.Mutex
	closed bool
}

// Capture runs the command once and returns its stdout as a JPEG.
func (s *stream) Capture(ctx context.Context) (*entity.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.WithStack(domainerrors.ErrCameraNotOpen)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.path, s.camera.args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WithStack(ctxErr)
		}
		if strings.Contains(strings.ToLower(stderr.String()), "permission denied") {
			return nil, errors.WithStack(domainerrors.ErrCameraPermissionDenied.WithDetails(stderr.String()))
		}

		return nil, errors.Wrap(classify(err), strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, errors.WithStack(domainerrors.ErrCameraUnavailable.WithDetails("capture produced no data"))
	}

	data := stdout.Bytes()
	contentType := mimetype.Detect(data).String()
	if !strings.HasPrefix(contentType, "image/") {
		contentType = "image/jpeg"
	}

	return &entity.Image{
		Filename:    CaptureFilename(s.camera.now()),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// Close releases the stream. Closing twice is a no-op.
func (s *stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.camera.open.Add(-1)
	s.camera.logger.Debug("Camera released")

	return nil
}

// CaptureFilename names a captured frame after its capture time in milliseconds.
func CaptureFilename(at time.Time) string {
	return fmt.Sprintf("capture-%d.jpg", at.UnixMilli())
}

func classify(err error) error {
	switch {
	case errors.Is(err, os.ErrPermission):
		return errors.WithStack(domainerrors.ErrCameraPermissionDenied.WithDetails(err.Error()))
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return errors.WithStack(domainerrors.ErrCameraNotFound.WithDetails(err.Error()))
	default:
		return errors.WithStack(domainerrors.ErrCameraUnavailable.WithDetails(err.Error()))
	}
}
