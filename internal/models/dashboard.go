package models

// DashboardOverview summarises the learner's screens.
type DashboardOverview struct {
	PendingAssignments   int `json:"pending_assignments"`
	CompletedAssignments int `json:"completed_assignments"`
	AverageGrade         int `json:"average_grade"`
	UnreadMessages       int `json:"unread_messages"`
	EnrolledCourses      int `json:"enrolled_courses"`
}

// SiteSettings is the public shell configuration.
type SiteSettings struct {
	Theme           string   `json:"theme"`
	PublicRoutes    []string `json:"public_routes"`
	DashboardRoutes []string `json:"dashboard_routes"`
}

// ContactRequest is the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
