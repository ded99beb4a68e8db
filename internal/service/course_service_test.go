package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

type staticGrades []models.Grade

func (s staticGrades) All(context.Context) []models.Grade { return s }

func TestCourseListFiltersAndSorts(t *testing.T) {
	svc := NewCourseService(nil)

	all := svc.List(models.CourseQuery{})
	assert.Len(t, all, 16)

	design := svc.List(models.CourseQuery{Category: "Design", Sort: models.CourseSortPriceAsc})
	require.Len(t, design, 3)
	assert.Equal(t, "Desktop Publishing Course", design[0].Title)
	assert.Equal(t, 79, design[0].Price)

	cheapest := svc.List(models.CourseQuery{Category: models.CategoryAll, Sort: models.CourseSortPriceAsc, Limit: 3})
	require.Len(t, cheapest, 3)
	assert.Equal(t, []int{59, 79, 89}, []int{cheapest[0].Price, cheapest[1].Price, cheapest[2].Price})

	found := svc.List(models.CourseQuery{Search: "tensorflow"})
	require.Len(t, found, 1)
	assert.Equal(t, int64(4), found[0].ID)

	assert.Equal(t, all, svc.List(models.CourseQuery{Sort: "popular"}))
	assert.Empty(t, svc.List(models.CourseQuery{Category: "Cooking"}))
}

func TestCourseCategories(t *testing.T) {
	assert.Equal(t,
		[]string{"All", "Web Dev", "Data", "Security", "Cloud", "Design", "Business", "Engineering"},
		NewCourseService(nil).Categories())
}

func TestCourseEnrolledJoinsGradesByTitle(t *testing.T) {
	svc := NewCourseService(staticGrades{
		{ID: 1, Course: "AutoCAD Course", Grade: 70, Progress: 20},
		{ID: 2, Course: "Basket Weaving", Grade: 90, Progress: 90},
	})
	enrolled := svc.Enrolled(context.Background())
	require.Len(t, enrolled, 1)
	assert.Equal(t, "Daniel Evans", enrolled[0].Instructor)
	assert.Equal(t, 20, enrolled[0].Progress)

	assert.Empty(t, NewCourseService(nil).Enrolled(context.Background()))
}
