package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// editableSettings is the persisted part of the settings screen.
type editableSettings struct {
	Profile       models.ProfileSettings       `json:"profile"`
	Notifications models.NotificationSettings  `json:"notifications"`
	Academic      models.AcademicSettings      `json:"academic"`
	Account       models.AccountSettings       `json:"account"`
	Accessibility models.AccessibilitySettings `json:"accessibility"`
}

func defaultEditableSettings() editableSettings {
	d := defaultSettings()
	return editableSettings{
		Profile:       d.Profile,
		Notifications: d.Notifications,
		Academic:      d.Academic,
		Account:       d.Account,
		Accessibility: d.Accessibility,
	}
}

// SettingsService reads and saves the settings panels.
type SettingsService struct {
	state     *PersistedState[editableSettings]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingsService constructs the service over kv.
func NewSettingsService(kv KeyValueStore, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *SettingsService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{
		state:     NewPersistedState(KeySettings, kv, defaultEditableSettings, logger, metrics),
		validator: validate,
		logger:    logger,
	}
}

// Get returns every panel, including the read-only ones.
func (s *SettingsService) Get(ctx context.Context) models.Settings {
	return merge(s.state.Initialize(ctx))
}

// Save replaces one editable section with the decoded body and returns the
// confirmation copy.
func (s *SettingsService) Save(ctx context.Context, update models.SettingsUpdate) (models.Settings, string, error) {
	if !update.Section.Editable() {
		return models.Settings{}, "", appErrors.Validation(map[string]string{
			"section": "section " + string(update.Section) + " cannot be edited",
		})
	}

	next, err := s.state.Update(ctx, func(current editableSettings) (editableSettings, error) {
		return s.apply(current, update)
	})
	if err != nil {
		return models.Settings{}, "", err
	}
	s.logger.Sugar().Infow("settings saved", "section", update.Section)
	return merge(next), sectionLabel(update.Section) + " saved successfully", nil
}

func (s *SettingsService) apply(current editableSettings, update models.SettingsUpdate) (editableSettings, error) {
	var err error
	switch update.Section {
	case models.SectionProfile:
		var p models.ProfileSettings
		if err = decodeStrict(update.Body, &p); err == nil {
			p.Email = strings.TrimSpace(p.Email)
			if p.Email != "" && !ValidEmail(p.Email) {
				return current, appErrors.Validation(map[string]string{"email": msgInvalidEmail})
			}
			current.Profile = p
		}
	case models.SectionNotifications:
		err = decodeStrict(update.Body, &current.Notifications)
	case models.SectionAcademic:
		a := current.Academic
		if err = decodeStrict(update.Body, &a); err == nil {
			if verr := s.validator.Struct(a); verr != nil {
				return current, validationError(verr, fieldMessages{"gradeView": "gradeView must be percentage or letter"})
			}
			current.Academic = a
		}
	case models.SectionAccount:
		err = decodeStrict(update.Body, &current.Account)
	case models.SectionAccessibility:
		err = decodeStrict(update.Body, &current.Accessibility)
	}
	if err != nil {
		return current, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+string(update.Section)+" payload")
	}
	return current, nil
}

// decodeStrict rejects unknown fields so typos do not silently vanish.
func decodeStrict(body []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func merge(e editableSettings) models.Settings {
	out := defaultSettings()
	out.Profile = e.Profile
	out.Notifications = e.Notifications
	out.Academic = e.Academic
	out.Account = e.Account
	out.Accessibility = e.Accessibility
	return out
}

func sectionLabel(section models.SettingsSection) string {
	s := string(section)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
