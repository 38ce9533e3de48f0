package usecase

import (
	"context"

	"growguard/internal/domain/entity"
)

// ReportListView is the all-reports screen.
type ReportListView struct {
	Reports          []*entity.Report `json:"reports"`
	Loaded           bool             `json:"loaded"`
	Err              string           `json:"error,omitempty"`
	DeleteAllPending bool             `json:"deleteAllPending"`
}

// ReportView is the diagnosis report screen.
type ReportView struct {
	Report        *entity.Report `json:"report"`
	ImageURL      string         `json:"imageUrl"`
	Saved         bool           `json:"saved"`
	DeletePending bool           `json:"deletePending"`
	Notice        string         `json:"notice,omitempty"`
	Err           string         `json:"error,omitempty"`
}

// ReportUsecase is the report cache of the session: the list of saved reports and the
// report currently open. The cache belongs to the session token it was filled under and
// is dropped as soon as that session ends.
type ReportUsecase interface {
	// Refresh replaces the list with the backend's. On failure the list is emptied and
	// the error message kept for display.
	Refresh(ctx context.Context) (*ReportListView, error)
	List() *ReportListView
	// Open fetches a report's detail, makes it current and navigates to it.
	Open(ctx context.Context, id string) (*ReportView, error)

	SetCurrent(report *entity.Report)
	Current() (*ReportView, error)
	// Save persists the current report. Saving a durable report makes no call.
	Save(ctx context.Context) (*ReportView, error)

	RequestDelete() (*ReportView, error)
	CancelDelete() (*ReportView, error)
	// ConfirmDelete deletes the current report and navigates to the list. An unsaved
	// report is discarded without a call.
	ConfirmDelete(ctx context.Context) error

	RequestDeleteAll() *ReportListView
	CancelDeleteAll() *ReportListView
	ConfirmDeleteAll(ctx context.Context) (*ReportListView, error)

	// ShareCode renders a QR code for the current report, which must be saved.
	ShareCode(ctx context.Context) ([]byte, error)
}
