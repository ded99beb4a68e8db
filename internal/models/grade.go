package models

// Grade sort keys.
const (
	GradeSortGradeDesc    = "grade-desc"
	GradeSortGradeAsc     = "grade-asc"
	GradeSortCourseAsc    = "course-asc"
	GradeSortCourseDesc   = "course-desc"
	GradeSortProgressDesc = "progress-desc"
)

// Grade is a learner's score and progress in one course. Grade and Progress
// are percentages in 0..100.
type Grade struct {
	ID        int64  `json:"id"`
	Course    string `json:"course"`
	Grade     int    `json:"grade"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
	Updated   string `json:"updated"`
}

func (g Grade) ItemID() int64 { return g.ID }

// GradeUpdateRequest is the inline grade edit payload.
type GradeUpdateRequest struct {
	Grade *int `json:"grade" validate:"required"`
}

// GradeSummary accompanies the grades listing.
type GradeSummary struct {
	Average int `json:"average"`
	Courses int `json:"courses"`
}
