package service

import (
	"context"
	"slices"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

var courseSorts = SortSpec[models.Course]{
	models.CourseSortPriceAsc:     func(a, b models.Course) int { return CompareNumber(a.Price, b.Price) },
	models.CourseSortPriceDesc:    Descending(func(a, b models.Course) int { return CompareNumber(a.Price, b.Price) }),
	models.CourseSortDurationAsc:  func(a, b models.Course) int { return CompareNumber(a.Duration, b.Duration) },
	models.CourseSortDurationDesc: Descending(func(a, b models.Course) int { return CompareNumber(a.Duration, b.Duration) }),
}

var courseSearchFields = []func(models.Course) string{
	func(c models.Course) string { return c.Title },
	func(c models.Course) string { return c.Description },
}

type gradeLister interface {
	All(ctx context.Context) []models.Grade
}

// CourseService serves the static catalog.
type CourseService struct {
	catalog []models.Course
	grades  gradeLister
}

// NewCourseService builds the catalog. grades may be nil when enrolment
// data is not needed.
func NewCourseService(grades gradeLister) *CourseService {
	return &CourseService{catalog: courseCatalog(), grades: grades}
}

// List filters the catalog by category and search text, sorts it, and
// truncates it to q.Limit when positive.
func (s *CourseService) List(q models.CourseQuery) []models.Course {
	var keep func(models.Course) bool
	if q.Category != "" && q.Category != models.CategoryAll {
		keep = func(c models.Course) bool { return c.Category == q.Category }
	}
	courses := Project(s.catalog, Query[models.Course]{
		Search:       q.Search,
		SearchFields: courseSearchFields,
		Filter:       keep,
		Sort:         q.Sort,
	}, courseSorts)
	if q.Limit > 0 && q.Limit < len(courses) {
		courses = courses[:q.Limit]
	}
	return courses
}

// Categories lists the distinct categories in catalog order, led by All.
func (s *CourseService) Categories() []string {
	out := []string{models.CategoryAll}
	for _, c := range s.catalog {
		if !slices.Contains(out, c.Category) {
			out = append(out, c.Category)
		}
	}
	return out
}

// Enrolled returns catalog courses that have a grade row with the same
// title, carrying that row's progress.
func (s *CourseService) Enrolled(ctx context.Context) []models.EnrolledCourse {
	if s.grades == nil {
		return []models.EnrolledCourse{}
	}
	byCourse := make(map[string]models.Grade)
	for _, g := range s.grades.All(ctx) {
		byCourse[g.Course] = g
	}
	out := make([]models.EnrolledCourse, 0, len(byCourse))
	for _, c := range s.catalog {
		g, ok := byCourse[c.Title]
		if !ok {
			continue
		}
		out = append(out, models.EnrolledCourse{
			Course:    c,
			Grade:     g.Grade,
			Progress:  g.Progress,
			Completed: g.Completed,
			Updated:   g.Updated,
		})
	}
	return out
}
