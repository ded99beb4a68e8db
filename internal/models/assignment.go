package models

// AssignmentStatus is the workflow state of an assignment.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "Pending"
	AssignmentCompleted AssignmentStatus = "Completed"
)

// Assignment sort keys.
const (
	AssignmentSortDueAsc     = "due-asc"
	AssignmentSortDueDesc    = "due-desc"
	AssignmentSortCourseAsc  = "course-asc"
	AssignmentSortCourseDesc = "course-desc"
	AssignmentSortStatus     = "status"
)

// Assignment is one row of the assignments screen. Completed mirrors Status;
// Due and Updated are YYYY-MM-DD dates.
type Assignment struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	Course    string           `json:"course"`
	Due       string           `json:"due"`
	Status    AssignmentStatus `json:"status"`
	Completed bool             `json:"completed"`
	Updated   string           `json:"updated"`
}

func (a Assignment) ItemID() int64 { return a.ID }
