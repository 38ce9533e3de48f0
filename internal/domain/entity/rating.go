package entity

// Rating is the app feedback submitted from the dashboard.
type Rating struct {
	Stars    int    `json:"rating" validate:"min=1,max=5"`
	Feedback string `json:"feedback"`
}
