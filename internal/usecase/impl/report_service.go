package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/i18n"
	"growguard/internal/domain/service"
	"growguard/internal/errors"
	"growguard/internal/usecase"

	"go.uber.org/fx"
)

const (
	loadReportsFailedMessage  = "Failed to load reports. Please try again."
	saveReportFailedMessage   = "Failed to save report. Please try again."
	deleteReportFailedMessage = "Failed to delete report. Please try again."
	deleteAllFailedMessage    = "Failed to delete reports. Please try again."
)

// ReportServiceParams holds dependencies for the report cache, injected by Fx.
type ReportServiceParams struct {
	fx.In

	Gateway   service.Gateway
	Session   service.SessionBinding
	Images    service.ImageSource
	QRCode    service.QRCodeService
	Navigator usecase.NavigatorUsecase
	Language  usecase.LanguageUsecase
	Texts     *i18n.Table
	Logger    *slog.Logger
}

// reportService implements the ReportUsecase interface.
type reportService struct {
	gateway   service.Gateway
	session   service.SessionBinding
	images    service.ImageSource
	qrcode    service.QRCodeService
	navigator usecase.NavigatorUsecase
	language  usecase.LanguageUsecase
	texts     *i18n.Table
	logger    *slog.Logger

	mu sync.Mutex
	// owner is the session token the cache was filled under.
	owner string

	reports          []*entity.Report
	loaded           bool
	listErr          string
	deleteAllPending bool
	deletingAll      bool

	current       *entity.Report
	saved         bool
	saving        bool
	deletePending bool
	deleting      bool
	notice        string
	currentErr    string
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		gateway:   params.Gateway,
		session:   params.Session,
		images:    params.Images,
		qrcode:    params.QRCode,
		navigator: params.Navigator,
		language:  params.Language,
		texts:     params.Texts,
		logger:    params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// claim drops the cache when the session changed since it was filled and returns the
// current token. Callers must hold mu.
func (srv *reportService) claim() string {
	token := srv.session.Token()
	if token != srv.owner {
		srv.owner = token
		srv.reports = nil
		srv.loaded = false
		srv.listErr = ""
		srv.deleteAllPending = false
		srv.deletingAll = false
		srv.resetCurrent(nil)
	}

	return token
}

func (srv *reportService) resetCurrent(report *entity.Report) {
	srv.current = report
	srv.saved = report.Durable()
	srv.saving = false
	srv.deletePending = false
	srv.deleting = false
	srv.notice = ""
	srv.currentErr = ""
}

func (srv *reportService) listView() *usecase.ReportListView {
	reports := make([]*entity.Report, len(srv.reports))
	for i, r := range srv.reports {
		reports[i] = r.Clone()
	}

	return &usecase.ReportListView{
		Reports:          reports,
		Loaded:           srv.loaded,
		Err:              srv.listErr,
		DeleteAllPending: srv.deleteAllPending,
	}
}

func (srv *reportService) currentView() (*usecase.ReportView, error) {
	if srv.current == nil {
		return nil, errors.WithStack(domainerrors.ErrNoCurrentReport)
	}

	return &usecase.ReportView{
		Report:        srv.current.Clone(),
		ImageURL:      srv.gateway.ImageURL(srv.current.Image),
		Saved:         srv.saved,
		DeletePending: srv.deletePending,
		Notice:        srv.notice,
		Err:           srv.currentErr,
	}, nil
}

func (srv *reportService) Refresh(ctx context.Context) (*usecase.ReportListView, error) {
	srv.mu.Lock()
	token := srv.claim()
	srv.mu.Unlock()

	reports, err := srv.gateway.ListReports(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.claim() != token {
		return srv.listView(), errors.WithStack(domainerrors.ErrNotAuthenticated)
	}
	srv.loaded = true
	if err != nil {
		srv.reports = nil
		srv.listErr = domainerrors.UserMessage(err, loadReportsFailedMessage)

		return srv.listView(), errors.Wrap(err, "failed to load reports")
	}

	srv.reports = reports
	srv.listErr = ""
	srv.log(ctx).Debug("Reports loaded", slog.Int("count", len(reports)))

	return srv.listView(), nil
}

func (srv *reportService) List() *usecase.ReportListView {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.claim()

	return srv.listView()
}

func (srv *reportService) Open(ctx context.Context, id string) (*usecase.ReportView, error) {
	srv.mu.Lock()
	token := srv.claim()
	srv.mu.Unlock()

	report, err := srv.gateway.GetReport(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load report details")
	}

	srv.mu.Lock()
	if srv.claim() != token {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}
	srv.resetCurrent(report)
	view, err := srv.currentView()
	srv.mu.Unlock()

	srv.navigator.Navigate(entity.RouteDiagnosisReport, "")

	return view, err
}

func (srv *reportService) SetCurrent(report *entity.Report) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.claim()
	srv.resetCurrent(report.Clone())
}

func (srv *reportService) Current() (*usecase.ReportView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.claim()

	return srv.currentView()
}

func (srv *reportService) Save(ctx context.Context) (*usecase.ReportView, error) {
	srv.mu.Lock()
	token := srv.claim()
	if srv.current == nil {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrNoCurrentReport)
	}
	if srv.saved || srv.current.Durable() {
		srv.saved = true
		srv.notice = srv.savedNotice()
		view, err := srv.currentView()
		srv.mu.Unlock()

		return view, err
	}
	if srv.saving {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrRequestInFlight.WithDetails("save report"))
	}
	srv.saving = true
	report := srv.current
	pending := report.Clone()
	srv.mu.Unlock()

	saved, err := srv.gateway.SaveReport(ctx, pending)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.claim() != token || srv.current != report {
		return nil, errors.WithStack(domainerrors.ErrNoCurrentReport)
	}
	srv.saving = false
	if err != nil {
		srv.currentErr = domainerrors.UserMessage(err, saveReportFailedMessage)
		view, _ := srv.currentView()

		return view, errors.Wrap(err, "failed to save report")
	}

	if err := srv.current.AssignID(saved.ID); err != nil {
		return nil, errors.Wrap(err, "failed to record report id")
	}
	srv.saved = true
	srv.currentErr = ""
	srv.notice = srv.savedNotice()
	if srv.loaded {
		srv.reports = append([]*entity.Report{srv.current.Clone()}, srv.reports...)
	}
	srv.log(ctx).Info("Report saved", slog.String("reportID", saved.ID))

	return srv.currentView()
}

func (srv *reportService) savedNotice() string {
	return srv.texts.Get("diagnosisReport", "reportSaved", srv.language.Get())
}

func (srv *reportService) RequestDelete() (*usecase.ReportView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.claim()
	if srv.current == nil {
		return nil, errors.WithStack(domainerrors.ErrNoCurrentReport)
	}
	srv.deletePending = true

	return srv.currentView()
}

func (srv *reportService) CancelDelete() (*usecase.ReportView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.claim()
	if srv.current == nil {
		return nil, errors.WithStack(domainerrors.ErrNoCurrentReport)
	}
	if !srv.deleting {
		srv.deletePending = false
	}

	return srv.currentView()
}

func (srv *reportService) ConfirmDelete(ctx context.Context) error {
	srv.mu.Lock()
	token := srv.claim()
	if srv.current == nil {
		srv.mu.Unlock()

		return errors.WithStack(domainerrors.ErrNoCurrentReport)
	}
	if !srv.deletePending {
		srv.mu.Unlock()

		return errors.WithStack(domainerrors.ErrConfirmationRequired)
	}
	if srv.deleting {
		srv.mu.Unlock()

		return errors.WithStack(domainerrors.ErrRequestInFlight.WithDetails("delete report"))
	}

	report := srv.current
	if !report.Durable() {
		srv.resetCurrent(nil)
		srv.mu.Unlock()
		srv.navigator.Navigate(entity.RouteAllReports, "")

		return nil
	}
	srv.deleting = true
	srv.mu.Unlock()

	err := srv.gateway.DeleteReport(ctx, report.ID)

	srv.mu.Lock()
	if srv.claim() != token || srv.current != report {
		srv.mu.Unlock()

		return errors.WithStack(domainerrors.ErrNoCurrentReport)
	}
	srv.deleting = false
	srv.deletePending = false
	if err != nil {
		srv.currentErr = domainerrors.UserMessage(err, deleteReportFailedMessage)
		srv.mu.Unlock()

		return errors.Wrap(err, "failed to delete report")
	}

	srv.removeFromList(report.ID)
	srv.resetCurrent(nil)
	srv.mu.Unlock()

	if filename := report.ImageFilename(); filename != "" {
		srv.images.Forget(filename)
	}
	srv.log(ctx).Info("Report deleted", slog.String("reportID", report.ID))
	srv.navigator.Navigate(entity.RouteAllReports, "")

	return nil
}

func (srv *reportService) removeFromList(id string) {
	kept := srv.reports[:0]
	for _, r := range srv.reports {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	srv.reports = kept
}

func (srv *reportService) RequestDeleteAll() *usecase.ReportListView {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.claim()
	srv.deleteAllPending = true

	return srv.listView()
}

func (srv *reportService) CancelDeleteAll() *usecase.ReportListView {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.claim()
	if !srv.deletingAll {
		srv.deleteAllPending = false
	}

	return srv.listView()
}

func (srv *reportService) ConfirmDeleteAll(ctx context.Context) (*usecase.ReportListView, error) {
	srv.mu.Lock()
	token := srv.claim()
	if !srv.deleteAllPending {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrConfirmationRequired)
	}
	if srv.deletingAll {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrRequestInFlight.WithDetails("delete all reports"))
	}
	srv.deletingAll = true
	removed := make([]string, 0, len(srv.reports))
	for _, r := range srv.reports {
		removed = append(removed, r.ImageFilename())
	}
	srv.mu.Unlock()

	err := srv.gateway.DeleteAllReports(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.claim() != token {
		return srv.listView(), errors.WithStack(domainerrors.ErrNotAuthenticated)
	}
	srv.deletingAll = false
	srv.deleteAllPending = false
	if err != nil {
		srv.listErr = domainerrors.UserMessage(err, deleteAllFailedMessage)

		return srv.listView(), errors.Wrap(err, "failed to delete reports")
	}

	srv.reports = nil
	srv.listErr = ""
	if srv.current.Durable() {
		srv.resetCurrent(nil)
	}
	for _, filename := range removed {
		if filename != "" {
			srv.images.Forget(filename)
		}
	}
	srv.log(ctx).Info("All reports deleted", slog.Int("count", len(removed)))

	return srv.listView(), nil
}

func (srv *reportService) ShareCode(ctx context.Context) ([]byte, error) {
	srv.mu.Lock()
	srv.claim()
	report := srv.current.Clone()
	srv.mu.Unlock()

	if report == nil {
		return nil, errors.WithStack(domainerrors.ErrNoCurrentReport)
	}
	if !report.Durable() {
		return nil, errors.WithStack(domainerrors.ErrReportNotDurable)
	}

	png, err := srv.qrcode.GenerateReportQR(report.ID, srv.gateway.ImageURL(report.Image))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}
	srv.log(ctx).Debug("Share code generated", slog.String("reportID", report.ID))

	return png, nil
}
