package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"
	mockService "growguard/internal/mocks/service"
	"growguard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type diagnosisServiceFixtures struct {
	reportServiceFixtures
	diagnosis usecase.DiagnosisUsecase
	camera    *mockService.MockCamera
}

func createTestDiagnosisService(t *testing.T) diagnosisServiceFixtures {
	fx := createTestReportService(t)
	camera := mockService.NewMockCamera(t)

	diagnosis := NewDiagnosisService(DiagnosisServiceParams{
		Config:    newTestConfig(),
		Camera:    camera,
		Gateway:   fx.gateway,
		Reports:   fx.reports,
		Navigator: fx.navigator,
		Logger:    newDiscardLogger(),
	})

	return diagnosisServiceFixtures{reportServiceFixtures: fx, diagnosis: diagnosis, camera: camera}
}

func testImage() *entity.Image {
	return &entity.Image{Filename: "leaf.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff, 0xe0}}
}

func TestDiagnosisService_Upload_BecomesCurrentReport(t *testing.T) {
	fx := createTestDiagnosisService(t)
	fx.gateway.EXPECT().UploadScan(mock.Anything, testImage()).Return(scanResult(), nil).Once()

	report, err := fx.diagnosis.Upload(context.Background(), testImage())
	require.NoError(t, err)
	assert.Equal(t, "Tomato Late Blight", report.DiseaseName)

	view, err := fx.reports.Current()
	require.NoError(t, err)
	assert.False(t, view.Saved)
	assert.Equal(t, entity.RouteDiagnosisReport, fx.navigator.Current().Route)
}

func TestDiagnosisService_Upload_OneInFlight(t *testing.T) {
	fx := createTestDiagnosisService(t)

	started := make(chan struct{})
	release := make(chan struct{})
	fx.gateway.EXPECT().
		UploadScan(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, image *entity.Image) {
			close(started)
			<-release
		}).
		Return(scanResult(), nil).
		Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = fx.diagnosis.Upload(context.Background(), testImage())
	}()

	<-started
	assert.True(t, fx.diagnosis.View().Uploading)
	_, err := fx.diagnosis.Upload(context.Background(), testImage())
	assert.True(t, errors.Is(err, domainerrors.ErrRequestInFlight))

	close(release)
	wg.Wait()
	assert.False(t, fx.diagnosis.View().Uploading)
}

func TestDiagnosisService_Upload_FailureMessage(t *testing.T) {
	fx := createTestDiagnosisService(t)
	fx.gateway.EXPECT().UploadScan(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := fx.diagnosis.Upload(context.Background(), testImage())
	require.Error(t, err)
	assert.Equal(t, uploadFailedMessage, fx.diagnosis.View().Err)
}

func TestDiagnosisService_Upload_CanceledResultIsDropped(t *testing.T) {
	fx := createTestDiagnosisService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.gateway.EXPECT().
		UploadScan(mock.Anything, mock.Anything).
		Run(func(context.Context, *entity.Image) { cancel() }).
		Return(scanResult(), nil).
		Once()

	_, err := fx.diagnosis.Upload(ctx, testImage())
	require.ErrorIs(t, err, context.Canceled)

	_, err = fx.reports.Current()
	assert.True(t, errors.Is(err, domainerrors.ErrNoCurrentReport))
}

func TestDiagnosisService_Upload_RejectsEmptyImage(t *testing.T) {
	fx := createTestDiagnosisService(t)

	_, err := fx.diagnosis.Upload(context.Background(), &entity.Image{Filename: "x.jpg"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDiagnosisService_OpenCamera_DeniedFallsBackToFilePicker(t *testing.T) {
	fx := createTestDiagnosisService(t)
	fx.camera.EXPECT().Open(mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrCameraPermissionDenied)).Once()

	start := time.Now()
	view, err := fx.diagnosis.OpenCamera(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCameraPermissionDenied))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Equal(t, usecase.CaptureModeFilePicker, view.Mode)
	assert.Equal(t, "Camera permission denied. Using file picker instead.", view.Err)
}

func TestDiagnosisService_CaptureReleasesCameraAndUploads(t *testing.T) {
	fx := createTestDiagnosisService(t)
	stream := mockService.NewMockCameraStream(t)

	fx.camera.EXPECT().Open(mock.Anything).Return(stream, nil).Once()
	stream.EXPECT().Capture(mock.Anything).Return(testImage(), nil).Once()
	stream.EXPECT().Close().Return(nil).Once()
	fx.gateway.EXPECT().UploadScan(mock.Anything, testImage()).Return(scanResult(), nil).Once()

	view, err := fx.diagnosis.OpenCamera(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.CaptureModeCamera, view.Mode)

	_, err = fx.diagnosis.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.CaptureModeIdle, fx.diagnosis.View().Mode)

	// The stream is gone; closing again is a no-op.
	require.NoError(t, fx.diagnosis.CloseCamera(context.Background()))
}

func TestDiagnosisService_CaptureFailureStillReleasesCamera(t *testing.T) {
	fx := createTestDiagnosisService(t)
	stream := mockService.NewMockCameraStream(t)

	fx.camera.EXPECT().Open(mock.Anything).Return(stream, nil).Once()
	stream.EXPECT().Capture(mock.Anything).Return(nil, errors.New("no frame")).Once()
	stream.EXPECT().Close().Return(nil).Once()

	_, err := fx.diagnosis.OpenCamera(context.Background())
	require.NoError(t, err)

	_, err = fx.diagnosis.Capture(context.Background())
	require.Error(t, err)
	assert.Equal(t, captureFailedMessage, fx.diagnosis.View().Err)
}

func TestDiagnosisService_CaptureWithoutCamera(t *testing.T) {
	fx := createTestDiagnosisService(t)

	_, err := fx.diagnosis.Capture(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrCameraNotOpen))
}
