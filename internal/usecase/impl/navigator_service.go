package impl

import (
	"log/slog"
	"sync"

	"growguard/internal/domain/entity"
	"growguard/internal/usecase"
)

type navigatorService struct {
	mu       sync.Mutex
	location entity.Location
	logger   *slog.Logger
}

// NewNavigatorService starts at the language selection screen.
func NewNavigatorService(logger *slog.Logger) usecase.NavigatorUsecase {
	return &navigatorService{
		location: entity.Location{Route: entity.RouteLanguageSelection},
		logger:   logger,
	}
}

func (srv *navigatorService) Navigate(route entity.Route, flash string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.logger.Debug("Navigating", slog.String("from", string(srv.location.Route)), slog.String("to", string(route)))
	srv.location = entity.Location{Route: route, Flash: flash}
}

func (srv *navigatorService) ForceLogin() {
	srv.Navigate(entity.RouteLogin, "")
}

func (srv *navigatorService) Current() entity.Location {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.location
}

func (srv *navigatorService) TakeFlash() string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	flash := srv.location.Flash
	srv.location.Flash = ""

	return flash
}
