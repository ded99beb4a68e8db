package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

const resetProgressPrompt = "Reset progress for all courses to 0%? This cannot be undone."

var gradeSorts = SortSpec[models.Grade]{
	models.GradeSortGradeDesc:    Descending(func(a, b models.Grade) int { return CompareNumber(a.Grade, b.Grade) }),
	models.GradeSortGradeAsc:     func(a, b models.Grade) int { return CompareNumber(a.Grade, b.Grade) },
	models.GradeSortCourseAsc:    func(a, b models.Grade) int { return CompareText(a.Course, b.Course) },
	models.GradeSortCourseDesc:   Descending(func(a, b models.Grade) int { return CompareText(a.Course, b.Course) }),
	models.GradeSortProgressDesc: Descending(func(a, b models.Grade) int { return CompareNumber(a.Progress, b.Progress) }),
}

var gradeSearchFields = []func(models.Grade) string{
	func(g models.Grade) string { return g.Course },
}

// GradeService backs the grades screen.
type GradeService struct {
	store     *CollectionStore[models.Grade]
	validator *validator.Validate
	cfg       ScreenConfig
	logger    *zap.Logger
}

// NewGradeService constructs the service over kv.
func NewGradeService(kv KeyValueStore, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cfg ScreenConfig) *GradeService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{
		store:     NewCollectionStore(KeyGrades, kv, defaultGrades, logger, metrics),
		validator: validate,
		cfg:       cfg.normalize(),
		logger:    logger,
	}
}

func (s *GradeService) query(params models.QueryParameters) Query[models.Grade] {
	sort := params.Sort
	if sort == "" {
		sort = models.GradeSortGradeDesc
	}
	return Query[models.Grade]{
		Search:       params.Search,
		SearchFields: gradeSearchFields,
		Sort:         sort,
		Page:         params.Page,
		PageSize:     s.cfg.PageSize,
	}
}

// List returns one page of grades plus the summary over all grades.
func (s *GradeService) List(ctx context.Context, params models.QueryParameters) (Page[models.Grade], models.GradeSummary) {
	all := s.store.All(ctx)
	return View(all, s.query(params), gradeSorts), summarize(all)
}

// Filtered returns every grade matching params, unpaginated.
func (s *GradeService) Filtered(ctx context.Context, params models.QueryParameters) []models.Grade {
	return Project(s.store.All(ctx), s.query(params), gradeSorts)
}

// All returns the stored collection.
func (s *GradeService) All(ctx context.Context) []models.Grade {
	return s.store.All(ctx)
}

// Summary reports the rounded average grade.
func (s *GradeService) Summary(ctx context.Context) models.GradeSummary {
	return summarize(s.store.All(ctx))
}

// ToggleComplete flips the completed flag of one course.
func (s *GradeService) ToggleComplete(ctx context.Context, id int64) (models.Grade, error) {
	today := s.cfg.today()
	return s.store.Mutate(ctx, id, func(g models.Grade) models.Grade {
		g.Completed = !g.Completed
		g.Updated = today
		return g
	})
}

// UpdateGrade applies an inline grade edit. Out of range input leaves the
// row untouched. Progress moves halfway towards the new grade.
func (s *GradeService) UpdateGrade(ctx context.Context, id int64, req models.GradeUpdateRequest) (models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Grade{}, validationError(err, fieldMessages{"grade": "Grade is required."})
	}
	value := *req.Grade
	if value < 0 || value > 100 {
		return models.Grade{}, appErrors.Validation(map[string]string{"grade": "Grade must be between 0 and 100."})
	}

	today := s.cfg.today()
	updated, err := s.store.Mutate(ctx, id, func(g models.Grade) models.Grade {
		g.Grade = value
		g.Progress = clamp(roundHalfUp(float64(g.Progress+value)/2), 0, 100)
		g.Updated = today
		return g
	})
	if err != nil {
		return models.Grade{}, err
	}
	s.logger.Sugar().Infow("grade updated", "id", id, "grade", value, "progress", updated.Progress)
	return updated, nil
}

// ResetProgress zeroes progress for every course once confirmed.
func (s *GradeService) ResetProgress(ctx context.Context, confirm bool) models.DestructiveResult {
	if !confirm {
		return models.DestructiveResult{Message: resetProgressPrompt}
	}
	today := s.cfg.today()
	n := s.store.ResetAll(ctx, func(g models.Grade) models.Grade {
		g.Progress = 0
		g.Updated = today
		return g
	})
	s.logger.Sugar().Infow("grade progress reset", "count", n)
	return models.DestructiveResult{Applied: true, Affected: n}
}

func summarize(grades []models.Grade) models.GradeSummary {
	return models.GradeSummary{Average: AverageGrade(grades), Courses: len(grades)}
}

// AverageGrade is the mean grade rounded half up, or 0 for no grades.
func AverageGrade(grades []models.Grade) int {
	if len(grades) == 0 {
		return 0
	}
	total := 0
	for _, g := range grades {
		total += g.Grade
	}
	return roundHalfUp(float64(total) / float64(len(grades)))
}
