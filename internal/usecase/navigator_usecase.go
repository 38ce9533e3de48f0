package usecase

import "growguard/internal/domain/entity"

// NavigatorUsecase tracks the current screen of the client.
type NavigatorUsecase interface {
	Navigate(route entity.Route, flash string)
	// ForceLogin navigates to the login screen, replacing wherever the user was.
	ForceLogin()
	Current() entity.Location
	// TakeFlash returns the pending one-shot message and clears it.
	TakeFlash() string
}
