package entity

// Route names a screen of the client.
type Route string

const (
	RouteLanguageSelection Route = "/language-selection"
	RouteRegister          Route = "/register"
	RouteDetails           Route = "/details"
	RouteRegisterOTP       Route = "/register-otp"
	RouteLogin             Route = "/login"
	RouteLoginOTP          Route = "/login-otp"
	RouteDashboard         Route = "/dashboard"
	RouteProfile           Route = "/profile"
	RouteScanPlant         Route = "/scan-plant"
	RouteDiagnosisReport   Route = "/diagnosis-report"
	RouteAllReports        Route = "/all-reports"
)

// Location is where the client currently is, with an optional one-shot message.
type Location struct {
	Route Route  `json:"route"`
	Flash string `json:"flash,omitempty"`
}
