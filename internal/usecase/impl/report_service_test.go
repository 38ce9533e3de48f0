package impl

import (
	"context"
	"net/http"
	"testing"

	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"
	mockService "growguard/internal/mocks/service"
	"growguard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	reports   usecase.ReportUsecase
	gateway   *mockService.MockGateway
	images    *mockService.MockImageSource
	qrcode    *mockService.MockQRCodeService
	session   usecase.SessionUsecase
	navigator usecase.NavigatorUsecase
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	gateway := mockService.NewMockGateway(t)
	images := mockService.NewMockImageSource(t)
	qrcode := mockService.NewMockQRCodeService(t)
	store := newMemStore(t)
	logger := newDiscardLogger()
	navigator := NewNavigatorService(logger)
	session := newTestSession(t, store, navigator)

	_, err := session.Establish(context.Background(), "token-1", &entity.User{ID: 1})
	require.NoError(t, err)

	gateway.EXPECT().ImageURL(mock.Anything).RunAndReturn(func(path string) string {
		return "http://backend/uploads/" + entity.ImageFilename(path)
	}).Maybe()

	reports := NewReportService(ReportServiceParams{
		Gateway:   gateway,
		Session:   session,
		Images:    images,
		QRCode:    qrcode,
		Navigator: navigator,
		Language:  NewLanguageService(newTestConfig(), store, logger),
		Texts:     newTestTable(t),
		Logger:    logger,
	})

	return reportServiceFixtures{
		reports:   reports,
		gateway:   gateway,
		images:    images,
		qrcode:    qrcode,
		session:   session,
		navigator: navigator,
	}
}

func scanResult() *entity.Report {
	return &entity.Report{
		Image:           "/uploads/leaf.jpg",
		ImagePath:       "uploads/leaf.jpg",
		DiseaseName:     "Tomato Late Blight",
		Confidence:      0.91,
		DiagnosisPoints: []string{"Dark lesions on leaves"},
		TipsPoints:      []string{"Remove affected leaves"},
		Date:            "2025-11-25",
	}
}

func TestReportService_SaveOnce(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.reports.SetCurrent(scanResult())
	fx.gateway.EXPECT().
		SaveReport(mock.Anything, mock.MatchedBy(func(r *entity.Report) bool { return r.ID == "" && r.ImagePath == "uploads/leaf.jpg" })).
		Return(&entity.Report{ID: "42", ImagePath: "uploads/leaf.jpg"}, nil).
		Once()

	view, err := fx.reports.Save(ctx)
	require.NoError(t, err)
	assert.True(t, view.Saved)
	assert.Equal(t, "42", view.Report.ID)
	assert.Equal(t, "Report Saved", view.Notice)
	assert.Equal(t, "http://backend/uploads/leaf.jpg", view.ImageURL)

	// A second save makes no call.
	view, err = fx.reports.Save(ctx)
	require.NoError(t, err)
	assert.True(t, view.Saved)
	assert.Equal(t, "42", view.Report.ID)
}

func TestReportService_SaveDurableMakesNoCall(t *testing.T) {
	fx := createTestReportService(t)

	report := scanResult()
	report.ID = "7"
	fx.reports.SetCurrent(report)

	view, err := fx.reports.Save(context.Background())
	require.NoError(t, err)
	assert.True(t, view.Saved)
	assert.Equal(t, "Report Saved", view.Notice)
}

func TestReportService_SaveFailureKeepsReportUnsaved(t *testing.T) {
	fx := createTestReportService(t)

	fx.reports.SetCurrent(scanResult())
	fx.gateway.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	view, err := fx.reports.Save(context.Background())
	require.Error(t, err)
	assert.False(t, view.Saved)
	assert.Equal(t, saveReportFailedMessage, view.Err)
	assert.False(t, view.Report.Durable())
}

func TestReportService_NoCurrentReport(t *testing.T) {
	fx := createTestReportService(t)

	_, err := fx.reports.Current()
	assert.True(t, errors.Is(err, domainerrors.ErrNoCurrentReport))

	_, err = fx.reports.Save(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrNoCurrentReport))
}

func TestReportService_RefreshAndOpen(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().ListReports(mock.Anything).Return([]*entity.Report{{ID: "1", DiseaseName: "Healthy Plant", IsHealthy: true}}, nil).Once()

	list, err := fx.reports.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, list.Loaded)
	require.Len(t, list.Reports, 1)

	detail := scanResult()
	detail.ID = "1"
	fx.gateway.EXPECT().GetReport(mock.Anything, "1").Return(detail, nil).Once()

	view, err := fx.reports.Open(ctx, "1")
	require.NoError(t, err)
	assert.True(t, view.Saved)
	assert.Equal(t, entity.RouteDiagnosisReport, fx.navigator.Current().Route)
}

func TestReportService_RefreshFailureEmptiesList(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().ListReports(mock.Anything).Return([]*entity.Report{{ID: "1"}}, nil).Once()
	_, err := fx.reports.Refresh(ctx)
	require.NoError(t, err)

	fx.gateway.EXPECT().ListReports(mock.Anything).Return(nil, errors.New("boom")).Once()
	list, err := fx.reports.Refresh(ctx)

	require.Error(t, err)
	assert.Empty(t, list.Reports)
	assert.Equal(t, loadReportsFailedMessage, list.Err)
}

func TestReportService_DeleteRequiresConfirmation(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	report := scanResult()
	report.ID = "9"
	fx.reports.SetCurrent(report)

	err := fx.reports.ConfirmDelete(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrConfirmationRequired))

	view, err := fx.reports.RequestDelete()
	require.NoError(t, err)
	assert.True(t, view.DeletePending)

	view, err = fx.reports.CancelDelete()
	require.NoError(t, err)
	assert.False(t, view.DeletePending)
}

func TestReportService_ConfirmDelete(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().ListReports(mock.Anything).Return([]*entity.Report{{ID: "9", Image: "/uploads/leaf.jpg"}, {ID: "10"}}, nil).Once()
	_, err := fx.reports.Refresh(ctx)
	require.NoError(t, err)

	report := scanResult()
	report.ID = "9"
	fx.reports.SetCurrent(report)
	_, err = fx.reports.RequestDelete()
	require.NoError(t, err)

	fx.gateway.EXPECT().DeleteReport(mock.Anything, "9").Return(nil).Once()
	fx.images.EXPECT().Forget("leaf.jpg").Return().Once()

	require.NoError(t, fx.reports.ConfirmDelete(ctx))

	list := fx.reports.List()
	require.Len(t, list.Reports, 1)
	assert.Equal(t, "10", list.Reports[0].ID)
	assert.Equal(t, entity.RouteAllReports, fx.navigator.Current().Route)

	_, err = fx.reports.Current()
	assert.True(t, errors.Is(err, domainerrors.ErrNoCurrentReport))
}

func TestReportService_ConfirmDeleteUnsavedMakesNoCall(t *testing.T) {
	fx := createTestReportService(t)

	fx.reports.SetCurrent(scanResult())
	_, err := fx.reports.RequestDelete()
	require.NoError(t, err)

	require.NoError(t, fx.reports.ConfirmDelete(context.Background()))
	assert.Equal(t, entity.RouteAllReports, fx.navigator.Current().Route)
}

func TestReportService_ConfirmDeleteFailureClosesDialog(t *testing.T) {
	fx := createTestReportService(t)

	report := scanResult()
	report.ID = "9"
	fx.reports.SetCurrent(report)
	_, err := fx.reports.RequestDelete()
	require.NoError(t, err)

	fx.gateway.EXPECT().DeleteReport(mock.Anything, "9").Return(errors.New("boom")).Once()

	require.Error(t, fx.reports.ConfirmDelete(context.Background()))

	view, err := fx.reports.Current()
	require.NoError(t, err)
	assert.False(t, view.DeletePending)
	assert.Equal(t, deleteReportFailedMessage, view.Err)
}

func TestReportService_DeleteAll(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().ListReports(mock.Anything).Return([]*entity.Report{{ID: "1", Image: "/uploads/a.jpg"}, {ID: "2", Image: "/uploads/b.jpg"}}, nil).Once()
	_, err := fx.reports.Refresh(ctx)
	require.NoError(t, err)

	_, err = fx.reports.ConfirmDeleteAll(ctx)
	require.True(t, errors.Is(err, domainerrors.ErrConfirmationRequired))

	assert.True(t, fx.reports.RequestDeleteAll().DeleteAllPending)
	assert.False(t, fx.reports.CancelDeleteAll().DeleteAllPending)
	fx.reports.RequestDeleteAll()

	fx.gateway.EXPECT().DeleteAllReports(mock.Anything).Return(nil).Once()
	fx.images.EXPECT().Forget("a.jpg").Return().Once()
	fx.images.EXPECT().Forget("b.jpg").Return().Once()

	list, err := fx.reports.ConfirmDeleteAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Reports)
	assert.False(t, list.DeleteAllPending)
}

func TestReportService_DeleteAllFailureKeepsList(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().ListReports(mock.Anything).Return([]*entity.Report{{ID: "1"}}, nil).Once()
	_, err := fx.reports.Refresh(ctx)
	require.NoError(t, err)
	fx.reports.RequestDeleteAll()

	fx.gateway.EXPECT().DeleteAllReports(mock.Anything).Return(domainerrors.NewHTTPError("DELETE /reports", http.StatusInternalServerError, "")).Once()

	list, err := fx.reports.ConfirmDeleteAll(ctx)
	require.Error(t, err)
	assert.Len(t, list.Reports, 1)
	assert.False(t, list.DeleteAllPending)
	assert.Equal(t, "Internal Server Error", list.Err)
}

func TestReportService_CacheDroppedWhenSessionEnds(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().ListReports(mock.Anything).Return([]*entity.Report{{ID: "1"}}, nil).Once()
	_, err := fx.reports.Refresh(ctx)
	require.NoError(t, err)
	fx.reports.SetCurrent(scanResult())

	require.True(t, fx.session.Expire(ctx, "token-1"))

	list := fx.reports.List()
	assert.Empty(t, list.Reports)
	assert.False(t, list.Loaded)
	_, err = fx.reports.Current()
	assert.True(t, errors.Is(err, domainerrors.ErrNoCurrentReport))
}

func TestReportService_ShareCode(t *testing.T) {
	fx := createTestReportService(t)

	fx.reports.SetCurrent(scanResult())
	_, err := fx.reports.ShareCode(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrReportNotDurable))

	report := scanResult()
	report.ID = "42"
	fx.reports.SetCurrent(report)
	fx.qrcode.EXPECT().GenerateReportQR("42", "http://backend/uploads/leaf.jpg").Return([]byte("png"), nil).Once()

	png, err := fx.reports.ShareCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
