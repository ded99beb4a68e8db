package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

const resetAssignmentsPrompt = "Mark all assignments as pending? This cannot be undone."

var assignmentSorts = SortSpec[models.Assignment]{
	models.AssignmentSortDueAsc:     func(a, b models.Assignment) int { return CompareDate(a.Due, b.Due) },
	models.AssignmentSortDueDesc:    Descending(func(a, b models.Assignment) int { return CompareDate(a.Due, b.Due) }),
	models.AssignmentSortCourseAsc:  func(a, b models.Assignment) int { return CompareText(a.Course, b.Course) },
	models.AssignmentSortCourseDesc: Descending(func(a, b models.Assignment) int { return CompareText(a.Course, b.Course) }),
	models.AssignmentSortStatus:     func(a, b models.Assignment) int { return CompareText(string(a.Status), string(b.Status)) },
}

var assignmentSearchFields = []func(models.Assignment) string{
	func(a models.Assignment) string { return a.Title },
	func(a models.Assignment) string { return a.Course },
}

// AssignmentService backs the assignments screen.
type AssignmentService struct {
	store  *CollectionStore[models.Assignment]
	cfg    ScreenConfig
	logger *zap.Logger
}

// NewAssignmentService constructs the service over kv.
func NewAssignmentService(kv KeyValueStore, logger *zap.Logger, metrics *MetricsService, cfg ScreenConfig) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		store:  NewCollectionStore(KeyAssignments, kv, defaultAssignments, logger, metrics),
		cfg:    cfg.normalize(),
		logger: logger,
	}
}

func (s *AssignmentService) query(params models.QueryParameters) Query[models.Assignment] {
	sort := params.Sort
	if sort == "" {
		sort = models.AssignmentSortDueAsc
	}
	return Query[models.Assignment]{
		Search:       params.Search,
		SearchFields: assignmentSearchFields,
		Sort:         sort,
		Page:         params.Page,
		PageSize:     s.cfg.PageSize,
	}
}

// List returns one page of the filtered and sorted assignments.
func (s *AssignmentService) List(ctx context.Context, params models.QueryParameters) Page[models.Assignment] {
	return View(s.store.All(ctx), s.query(params), assignmentSorts)
}

// Filtered returns every assignment matching params, unpaginated.
func (s *AssignmentService) Filtered(ctx context.Context, params models.QueryParameters) []models.Assignment {
	return Project(s.store.All(ctx), s.query(params), assignmentSorts)
}

// All returns the stored collection in stored order.
func (s *AssignmentService) All(ctx context.Context) []models.Assignment {
	return s.store.All(ctx)
}

// ToggleComplete flips an assignment between Pending and Completed.
func (s *AssignmentService) ToggleComplete(ctx context.Context, id int64) (models.Assignment, error) {
	today := s.cfg.today()
	updated, err := s.store.Mutate(ctx, id, func(a models.Assignment) models.Assignment {
		return toggleAssignment(a, today)
	})
	if err != nil {
		return models.Assignment{}, err
	}
	s.logger.Sugar().Infow("assignment toggled", "id", id, "status", updated.Status)
	return updated, nil
}

// ResetAll marks every assignment Pending. Without confirm nothing changes.
func (s *AssignmentService) ResetAll(ctx context.Context, confirm bool) models.DestructiveResult {
	if !confirm {
		return models.DestructiveResult{Message: resetAssignmentsPrompt}
	}
	today := s.cfg.today()
	n := s.store.ResetAll(ctx, func(a models.Assignment) models.Assignment {
		return setAssignmentStatus(a, models.AssignmentPending, today)
	})
	s.logger.Sugar().Infow("assignments reset", "count", n)
	return models.DestructiveResult{Applied: true, Affected: n}
}

func toggleAssignment(a models.Assignment, today string) models.Assignment {
	next := models.AssignmentCompleted
	if a.Status == models.AssignmentCompleted {
		next = models.AssignmentPending
	}
	return setAssignmentStatus(a, next, today)
}

// setAssignmentStatus is the only place Status and Completed change, so the
// two never disagree.
func setAssignmentStatus(a models.Assignment, status models.AssignmentStatus, today string) models.Assignment {
	a.Status = status
	a.Completed = status == models.AssignmentCompleted
	a.Updated = today
	return a
}
