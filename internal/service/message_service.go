package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

const (
	deleteMessagePrompt = "Delete this message?"
	purgeReadPrompt     = "Delete all read messages?"
)

var messageSorts = SortSpec[models.Message]{
	models.MessageSortDateDesc:   Descending(func(a, b models.Message) int { return CompareDate(a.Date, b.Date) }),
	models.MessageSortDateAsc:    func(a, b models.Message) int { return CompareDate(a.Date, b.Date) },
	models.MessageSortSenderAsc:  func(a, b models.Message) int { return CompareText(a.Sender, b.Sender) },
	models.MessageSortSenderDesc: Descending(func(a, b models.Message) int { return CompareText(a.Sender, b.Sender) }),
}

var messageSearchFields = []func(models.Message) string{
	func(m models.Message) string { return m.Sender },
	func(m models.Message) string { return m.Subject },
	func(m models.Message) string { return m.Body },
}

// MessageService backs the inbox screen.
type MessageService struct {
	store  *CollectionStore[models.Message]
	cfg    ScreenConfig
	logger *zap.Logger
}

// NewMessageService constructs the service over kv.
func NewMessageService(kv KeyValueStore, logger *zap.Logger, metrics *MetricsService, cfg ScreenConfig) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{
		store:  NewCollectionStore(KeyMessages, kv, defaultMessages, logger, metrics),
		cfg:    cfg.normalize(),
		logger: logger,
	}
}

// ParseMessageFilter accepts all, read, unread or empty (all).
func ParseMessageFilter(raw string) (models.MessageFilter, error) {
	switch f := models.MessageFilter(raw); f {
	case "":
		return models.MessageFilterAll, nil
	case models.MessageFilterAll, models.MessageFilterRead, models.MessageFilterUnread:
		return f, nil
	}
	return "", appErrors.Validation(map[string]string{"filter": "filter must be one of all, read, unread"})
}

func readPredicate(filter models.MessageFilter) func(models.Message) bool {
	switch filter {
	case models.MessageFilterRead:
		return func(m models.Message) bool { return m.Read }
	case models.MessageFilterUnread:
		return func(m models.Message) bool { return !m.Read }
	}
	return nil
}

func (s *MessageService) query(params models.QueryParameters) (Query[models.Message], error) {
	filter, err := ParseMessageFilter(params.Filter)
	if err != nil {
		return Query[models.Message]{}, err
	}
	sort := params.Sort
	if sort == "" {
		sort = models.MessageSortDateDesc
	}
	return Query[models.Message]{
		Search:       params.Search,
		SearchFields: messageSearchFields,
		Filter:       readPredicate(filter),
		Sort:         sort,
		Page:         params.Page,
		PageSize:     s.cfg.PageSize,
	}, nil
}

// List returns one page of messages and the overall unread count.
func (s *MessageService) List(ctx context.Context, params models.QueryParameters) (Page[models.Message], int, error) {
	q, err := s.query(params)
	if err != nil {
		return Page[models.Message]{}, 0, err
	}
	all := s.store.All(ctx)
	return View(all, q, messageSorts), countUnread(all), nil
}

// Filtered returns every message matching params, unpaginated.
func (s *MessageService) Filtered(ctx context.Context, params models.QueryParameters) ([]models.Message, error) {
	q, err := s.query(params)
	if err != nil {
		return nil, err
	}
	return Project(s.store.All(ctx), q, messageSorts), nil
}

// All returns the stored collection.
func (s *MessageService) All(ctx context.Context) []models.Message {
	return s.store.All(ctx)
}

// UnreadCount counts unread messages.
func (s *MessageService) UnreadCount(ctx context.Context) int {
	return countUnread(s.store.All(ctx))
}

// ToggleRead flips the read flag of one message.
func (s *MessageService) ToggleRead(ctx context.Context, id int64) (models.Message, error) {
	return s.store.Mutate(ctx, id, func(m models.Message) models.Message {
		m.Read = !m.Read
		return m
	})
}

// Delete removes one message once confirmed.
func (s *MessageService) Delete(ctx context.Context, id int64, confirm bool) (models.DestructiveResult, error) {
	if !confirm {
		return models.DestructiveResult{Message: deleteMessagePrompt}, nil
	}
	if err := s.store.Remove(ctx, id); err != nil {
		return models.DestructiveResult{}, err
	}
	s.logger.Sugar().Infow("message deleted", "id", id)
	return models.DestructiveResult{Applied: true, Affected: 1}, nil
}

// PurgeRead removes every read message once confirmed.
func (s *MessageService) PurgeRead(ctx context.Context, confirm bool) models.DestructiveResult {
	if !confirm {
		return models.DestructiveResult{Message: purgeReadPrompt}
	}
	n := s.store.RemoveWhere(ctx, func(m models.Message) bool { return m.Read })
	s.logger.Sugar().Infow("read messages purged", "count", n)
	return models.DestructiveResult{Applied: true, Affected: n}
}

func countUnread(messages []models.Message) int {
	n := 0
	for _, m := range messages {
		if !m.Read {
			n++
		}
	}
	return n
}
