// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"growguard/internal/delivery/http/middleware"
	"growguard/internal/delivery/http/router/handler"
	"growguard/internal/domain/entity"
	"growguard/internal/domain/flow"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	LanguageHandler   *handler.LanguageHandler
	AuthHandler       *handler.AuthHandler
	DashboardHandler  *handler.DashboardHandler
	ProfileHandler    *handler.ProfileHandler
	ScanHandler       *handler.ScanHandler
	ReportHandler     *handler.ReportHandler
	SystemHandler     *handler.SystemHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	language  *handler.LanguageHandler
	auth      *handler.AuthHandler
	dashboard *handler.DashboardHandler
	profile   *handler.ProfileHandler
	scan      *handler.ScanHandler
	report    *handler.ReportHandler
	system    *handler.SystemHandler
	session   *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		language:  params.LanguageHandler,
		auth:      params.AuthHandler,
		dashboard: params.DashboardHandler,
		profile:   params.ProfileHandler,
		scan:      params.ScanHandler,
		report:    params.ReportHandler,
		system:    params.SystemHandler,
		session:   params.SessionMiddleware,
	}
}

// RegisterRoutes sets up every screen route of the companion server.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", r.system.Health)
	e.GET("/metrics", r.system.Metrics())
	e.GET("/", r.system.Location)
	e.GET("/location", r.system.Location)
	e.POST("/language/toggle", r.language.Toggle)

	languageGroup := e.Group(string(entity.RouteLanguageSelection), r.session.Enter(entity.RouteLanguageSelection))
	{
		languageGroup.GET("", r.language.Show)
		languageGroup.POST("", r.language.Select)
	}

	r.registerMobile(e, entity.RouteRegister, flow.PurposeRegistration)
	r.registerOTP(e, entity.RouteRegisterOTP, flow.PurposeRegistration)
	r.registerMobile(e, entity.RouteLogin, flow.PurposeLogin)
	r.registerOTP(e, entity.RouteLoginOTP, flow.PurposeLogin)

	detailsGroup := e.Group(string(entity.RouteDetails), r.session.Enter(entity.RouteDetails))
	{
		detailsGroup.GET("", r.auth.ShowDetails)
		detailsGroup.POST("", r.auth.SubmitDetails)
	}

	// Screens below require a session.
	dashboardGroup := r.protected(e, entity.RouteDashboard)
	{
		dashboardGroup.GET("", r.dashboard.Show)
		dashboardGroup.POST("/rating", r.dashboard.Rate)
		dashboardGroup.POST("/logout", r.dashboard.Logout)
	}

	profileGroup := r.protected(e, entity.RouteProfile)
	{
		profileGroup.GET("", r.profile.Show)
		profileGroup.PUT("", r.profile.Update)
	}

	scanGroup := r.protected(e, entity.RouteScanPlant)
	{
		scanGroup.GET("", r.scan.Show)
		scanGroup.POST("/camera", r.scan.OpenCamera)
		scanGroup.DELETE("/camera", r.scan.CloseCamera)
		scanGroup.POST("/capture", r.scan.Capture)
		scanGroup.POST("/upload", r.scan.Upload)
	}

	reportGroup := r.protected(e, entity.RouteDiagnosisReport)
	{
		reportGroup.GET("", r.report.ShowCurrent)
		reportGroup.POST("/save", r.report.Save)
		reportGroup.POST("/delete", r.report.RequestDelete)
		reportGroup.POST("/delete/cancel", r.report.CancelDelete)
		reportGroup.POST("/delete/confirm", r.report.ConfirmDelete)
		reportGroup.GET("/qr", r.report.ShareCode)
	}

	allReportsGroup := r.protected(e, entity.RouteAllReports)
	{
		allReportsGroup.GET("", r.report.ShowAll)
		allReportsGroup.GET("/:id", r.report.Open)
		allReportsGroup.POST("/delete-all", r.report.RequestDeleteAll)
		allReportsGroup.POST("/delete-all/cancel", r.report.CancelDeleteAll)
		allReportsGroup.POST("/delete-all/confirm", r.report.ConfirmDeleteAll)
	}

	e.GET("/images/:filename", r.system.Image, r.session.RequireSession)
}

func (r *router) registerMobile(e *echo.Echo, route entity.Route, purpose flow.Purpose) {
	group := e.Group(string(route), r.session.Enter(route))
	group.GET("", r.auth.ShowMobile(purpose))
	group.POST("", r.auth.SubmitMobile(purpose))
}

func (r *router) registerOTP(e *echo.Echo, route entity.Route, purpose flow.Purpose) {
	group := e.Group(string(route), r.session.Enter(route))
	group.GET("", r.auth.ShowOTP(purpose))
	group.POST("/digits", r.auth.EnterDigit)
	group.POST("/verify", r.auth.Verify)
	group.POST("/resend", r.auth.Resend)
	group.POST("/back", r.auth.Back(purpose))
}

func (r *router) protected(e *echo.Echo, route entity.Route) *echo.Group {
	return e.Group(string(route), r.session.RequireSession, r.session.Enter(route))
}
