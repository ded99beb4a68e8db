package models

// Course catalog sort keys. Any other value keeps catalog order.
const (
	CourseSortPriceAsc     = "priceAsc"
	CourseSortPriceDesc    = "priceDesc"
	CourseSortDurationAsc  = "durationAsc"
	CourseSortDurationDesc = "durationDesc"
)

// CategoryAll disables the category filter.
const CategoryAll = "All"

// Course is a catalog entry. Duration is in weeks and Price in USD.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
	Duration    int    `json:"duration"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image,omitempty"`
}

// CourseQuery filters the public catalog.
type CourseQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
	Limit    int    `form:"limit"`
}

// EnrolledCourse is a catalog course joined with the learner's grade row.
type EnrolledCourse struct {
	Course
	Grade     int    `json:"grade"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
	Updated   string `json:"updated"`
}
