package service

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

func sampleAssignments() []models.Assignment {
	return []models.Assignment{
		{ID: 1, Title: "Build a Portfolio Website", Course: "Web Development Fundamentals", Due: "2025-08-15", Status: models.AssignmentPending},
		{ID: 2, Title: "React Todo App", Course: "React & Frontend Development", Due: "2025-08-20", Status: models.AssignmentPending},
		{ID: 3, Title: "Data Analysis Report", Course: "Python for Data Analysis", Due: "2025-07-25", Status: models.AssignmentCompleted},
		{ID: 4, Title: "ML Model Evaluation", Course: "Machine Learning with Python", Due: "2025-08-22", Status: models.AssignmentPending},
		{ID: 5, Title: "Security Audit", Course: "cybersecurity & Ethical Hacking", Due: "2025-06-30", Status: models.AssignmentPending},
	}
}

func ids[T Identifiable](items []T) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ItemID()
	}
	return out
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := sampleAssignments()
	title := func(a models.Assignment) string { return a.Title }
	course := func(a models.Assignment) string { return a.Course }

	got := Search(items, "  PYTHON ", title, course)
	assert.Equal(t, []int64{3, 4}, ids(got))
	for _, a := range got {
		assert.True(t, strings.Contains(strings.ToLower(a.Title+a.Course), "python"))
	}

	assert.Equal(t, ids(items), ids(Search(items, "", title)))
	assert.Empty(t, Search(items, "nothing-matches", title, course))
}

func TestSortByIsStableIdempotentAndPermutation(t *testing.T) {
	items := sampleAssignments()
	once := SortBy(items, models.AssignmentSortStatus, assignmentSorts)
	twice := SortBy(once, models.AssignmentSortStatus, assignmentSorts)
	assert.Equal(t, once, twice)

	// Completed sorts before Pending; equal statuses keep input order.
	assert.Equal(t, []int64{3, 1, 2, 4, 5}, ids(once))

	sortedIDs := ids(once)
	slices.Sort(sortedIDs)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, sortedIDs)
}

func TestSortByUnknownKeyIsIdentity(t *testing.T) {
	items := sampleAssignments()
	assert.Equal(t, items, SortBy(items, "bogus", assignmentSorts))
}

func TestSortByUsesLocaleAndDates(t *testing.T) {
	items := sampleAssignments()
	assert.Equal(t, []int64{5, 3, 1, 2, 4}, ids(SortBy(items, models.AssignmentSortDueAsc, assignmentSorts)))
	// Collation ignores case: "cybersecurity" sorts before "Machine".
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, ids(SortBy(items, models.AssignmentSortCourseAsc, assignmentSorts)))
}

func TestPaginateConcatenationReconstructs(t *testing.T) {
	items := make([]models.Message, 23)
	for i := range items {
		items[i] = models.Message{ID: int64(i + 1)}
	}

	pages := TotalPages(len(items), 10)
	require.Equal(t, 3, pages)

	var joined []models.Message
	for p := 1; p <= pages; p++ {
		chunk := Paginate(items, p, 10)
		assert.LessOrEqual(t, len(chunk), 10)
		joined = append(joined, chunk...)
	}
	assert.Equal(t, items, joined)
	assert.Empty(t, Paginate(items, 4, 10))
}

func TestTotalPagesAndClamp(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 1, ClampPage(0, 50, 10))
	assert.Equal(t, 5, ClampPage(9, 50, 10))
	assert.Equal(t, 1, ClampPage(3, 0, 10))
}

func TestViewClampsAfterFiltering(t *testing.T) {
	items := make([]models.Message, 25)
	for i := range items {
		items[i] = models.Message{ID: int64(i + 1), Read: i%5 == 0}
	}

	page := View(items, Query[models.Message]{
		Filter:   func(m models.Message) bool { return m.Read },
		Page:     3,
		PageSize: 10,
	}, messageSorts)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, 5)
	assert.False(t, page.Empty)

	empty := View(items, Query[models.Message]{Search: "zzz", SearchFields: []func(models.Message) string{func(m models.Message) string { return m.Body }}}, messageSorts)
	assert.True(t, empty.Empty)
	assert.Equal(t, 1, empty.TotalPages)
	assert.NotNil(t, empty.Items)
}

func TestViewSortsBeforePaginating(t *testing.T) {
	items := make([]models.Grade, 15)
	for i := range items {
		items[i] = models.Grade{ID: int64(i + 1), Grade: i}
	}
	page := View(items, Query[models.Grade]{Sort: models.GradeSortGradeDesc, Page: 1, PageSize: 10}, gradeSorts)
	assert.Equal(t, 14, page.Items[0].Grade)
	page2 := View(items, Query[models.Grade]{Sort: models.GradeSortGradeDesc, Page: 2, PageSize: 10}, gradeSorts)
	assert.Equal(t, 4, page2.Items[0].Grade)
}

func TestCompareDateHandlesFormats(t *testing.T) {
	assert.Equal(t, -1, CompareDate("2025-07-30T06:00:00Z", "2025-08-01"))
	assert.Equal(t, 1, CompareDate("24/08/2025", "23/08/2025"))
	assert.Equal(t, -1, CompareDate("garbage", "2025-01-01"))
}
