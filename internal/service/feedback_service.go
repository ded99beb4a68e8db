package service

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

const defaultRating = 5

// The testimonial form uses a looser email check than the auth forms.
var feedbackEmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

var feedbackSorts = SortSpec[models.Feedback]{
	models.FeedbackSortRatingDesc: Descending(func(a, b models.Feedback) int { return CompareNumber(a.Rating, b.Rating) }),
	models.FeedbackSortRatingAsc:  func(a, b models.Feedback) int { return CompareNumber(a.Rating, b.Rating) },
	models.FeedbackSortNameAsc:    func(a, b models.Feedback) int { return CompareText(a.Name, b.Name) },
}

var feedbackSearchFields = []func(models.Feedback) string{
	func(f models.Feedback) string { return f.Name },
	func(f models.Feedback) string { return f.Feedback },
}

var feedbackMessages = fieldMessages{
	"name":     "Name is required",
	"email":    "Email is required",
	"feedback": "feedback is required",
	"rating":   "Rating must be between 1 and 5",
}

// FeedbackService stores learner testimonials.
type FeedbackService struct {
	store     *CollectionStore[models.Feedback]
	validator *validator.Validate
	cfg       ScreenConfig
	logger    *zap.Logger
}

// NewFeedbackService constructs the service over kv.
func NewFeedbackService(kv KeyValueStore, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cfg ScreenConfig) *FeedbackService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{
		store:     NewCollectionStore(KeyFeedback, kv, defaultFeedback, logger, metrics),
		validator: validate,
		cfg:       cfg.normalize(),
		logger:    logger,
	}
}

// List returns one page of testimonials, newest first unless sorted.
func (s *FeedbackService) List(ctx context.Context, params models.QueryParameters) Page[models.Feedback] {
	sort := params.Sort
	if sort == "" {
		sort = models.FeedbackSortNewest
	}
	return View(s.store.All(ctx), Query[models.Feedback]{
		Search:       params.Search,
		SearchFields: feedbackSearchFields,
		Sort:         sort,
		Page:         params.Page,
		PageSize:     s.cfg.PageSize,
	}, feedbackSorts)
}

// Submit validates the form and prepends a new testimonial.
func (s *FeedbackService) Submit(ctx context.Context, req models.FeedbackRequest) (models.Feedback, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Feedback = strings.TrimSpace(req.Feedback)

	fields := map[string]string{}
	if err := s.validator.Struct(req); err != nil {
		if e := appErrors.FromError(validationError(err, feedbackMessages)); len(e.Fields) > 0 {
			fields = e.Fields
		}
	}
	if _, ok := fields["email"]; !ok && !feedbackEmailPattern.MatchString(req.Email) {
		fields["email"] = "Email is invalid"
	}
	if len(fields) > 0 {
		return models.Feedback{}, appErrors.Validation(fields)
	}

	rating := defaultRating
	if req.Rating != nil {
		rating = *req.Rating
	}
	now := s.cfg.Now()
	entry := models.Feedback{
		ID:       now.UnixMilli(),
		Name:     req.Name,
		Email:    req.Email,
		Feedback: req.Feedback,
		Rating:   rating,
		Date:     now.Format("02/01/2006"),
	}
	entry = s.store.Prepend(ctx, entry, uniqueFeedbackID)
	s.logger.Sugar().Infow("feedback submitted", "id", entry.ID, "rating", entry.Rating)
	return entry, nil
}

// uniqueFeedbackID bumps the millisecond ID past any collision.
func uniqueFeedbackID(entry models.Feedback, existing []models.Feedback) models.Feedback {
	for slices.ContainsFunc(existing, func(f models.Feedback) bool { return f.ID == entry.ID }) {
		entry.ID++
	}
	return entry
}
