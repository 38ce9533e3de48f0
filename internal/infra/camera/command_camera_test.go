package camera

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string, mode os.FileMode) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}

	path := filepath.Join(t.TempDir(), "capture.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), mode))

	return path
}

func TestOpen_NoCommandIsNotFound(t *testing.T) {
	_, err := NewCommandCamera("", nil, nil).Open(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrCameraNotFound))
}

func TestOpen_MissingBinaryIsNotFound(t *testing.T) {
	_, err := NewCommandCamera("growguard-no-such-capture-tool", nil, nil).Open(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrCameraNotFound))
}

func TestOpen_UnexecutableIsPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can execute anything")
	}
	path := writeScript(t, "exit 0", 0o600)

	_, err := NewCommandCamera(path, nil, nil).Open(context.Background())

	assert.True(t, errors.IsAny(err, domainerrors.ErrCameraPermissionDenied, domainerrors.ErrCameraNotFound))
}

func TestCapture_ReturnsFrameAndReleases(t *testing.T) {
	path := writeScript(t, `printf '\377\330\377\340frame'`, 0o700)
	cam := NewCommandCamera(path, nil, nil)
	cam.now = func() time.Time { return time.UnixMilli(1700000000123) }

	s, err := cam.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cam.OpenStreams())

	img, err := s.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "capture-1700000000123.jpg", img.Filename)
	assert.Equal(t, "image/jpeg", img.ContentType)
	assert.NotEmpty(t, img.Data)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 0, cam.OpenStreams())

	_, err = s.Capture(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrCameraNotOpen))
}

func TestCapture_PermissionDeniedFromStderr(t *testing.T) {
	path := writeScript(t, `echo "/dev/video0: Permission denied" >&2; exit 1`, 0o700)

	s, err := NewCommandCamera(path, nil, nil).Open(context.Background())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Capture(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrCameraPermissionDenied))
}

func TestCapture_EmptyOutputIsUnavailable(t *testing.T) {
	path := writeScript(t, "exit 0", 0o700)

	s, err := NewCommandCamera(path, nil, nil).Open(context.Background())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Capture(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrCameraUnavailable))
}
