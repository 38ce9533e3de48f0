package handler

import (
	"time"

	"growguard/internal/delivery/http/response"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"
	"growguard/internal/usecase"
	"growguard/internal/util"

	"github.com/labstack/echo/v4"
)

const ratingFailedMessage = "Failed to submit rating. Please try again."

// DashboardView is the home screen of a signed-in user.
type DashboardView struct {
	FullName string `json:"fullName"`
	Location string `json:"location,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	// SessionTTL is how long the token stays valid, when it carries an expiry.
	SessionTTL string `json:"sessionTtl,omitempty"`
	Notice     string `json:"notice,omitempty"`
}

// DashboardHandler serves the dashboard, app rating and logout.
type DashboardHandler struct {
	session usecase.SessionUsecase
	rating  usecase.RatingUsecase
	screens *ScreenRenderer
	now     func() time.Time
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(session usecase.SessionUsecase, rating usecase.RatingUsecase, screens *ScreenRenderer) *DashboardHandler {
	return &DashboardHandler{
		session: session,
		rating:  rating,
		screens: screens,
		now:     time.Now,
	}
}

// Show renders the dashboard.
func (h *DashboardHandler) Show(c echo.Context) error {
	view, err := h.view()
	if err != nil {
		return err
	}

	return h.screens.Render(c, view)
}

// Rate submits app feedback.
func (h *DashboardHandler) Rate(c echo.Context) error {
	var rating entity.Rating
	if err := c.Bind(&rating); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	if err := h.rating.Submit(c.Request().Context(), &rating); err != nil {
		if rejected(err) {
			return response.HandleAppError(c, err)
		}

		return response.HandleFailure(c, err, ratingFailedMessage)
	}

	view, err := h.view()
	if err != nil {
		return err
	}
	view.Notice = "Thank you for your feedback!"

	return h.screens.Render(c, view)
}

// Logout ends the session. The client lands on the login screen.
func (h *DashboardHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return errors.Wrap(err, "logout")
	}

	return h.screens.Render(c, nil)
}

func (h *DashboardHandler) view() (*DashboardView, error) {
	session := h.session.Current()
	if !session.Authenticated() {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	view := &DashboardView{
		FullName: session.User.FullName(),
		Location: session.User.LocationText(),
	}
	if session.User != nil {
		view.Mobile = displayMobile(session.User.MobileNumber)
	}
	if session.ExpiresAt != nil {
		if ttl := session.ExpiresAt.Sub(h.now()); ttl > 0 {
			view.SessionTTL = util.FormatDuration(ttl)
		}
	}

	return view, nil
}
