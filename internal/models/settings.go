package models

import "encoding/json"

// SettingsSection names a settings panel.
type SettingsSection string

const (
	SectionProfile       SettingsSection = "profile"
	SectionNotifications SettingsSection = "notifications"
	SectionAcademic      SettingsSection = "academic"
	SectionAccount       SettingsSection = "account"
	SectionAccessibility SettingsSection = "accessibility"
	SectionSubscription  SettingsSection = "subscription"
	SectionDevices       SettingsSection = "devices"
)

// Editable reports whether the section accepts updates.
func (s SettingsSection) Editable() bool {
	switch s {
	case SectionProfile, SectionNotifications, SectionAcademic, SectionAccount, SectionAccessibility:
		return true
	}
	return false
}

type ProfileSettings struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

type NotificationSettings struct {
	Email         bool `json:"email"`
	Push          bool `json:"push"`
	CourseUpdates bool `json:"courseUpdates"`
}

type AcademicSettings struct {
	Language         string `json:"language"`
	GradeView        string `json:"gradeView" validate:"omitempty,oneof=percentage letter"`
	AttendanceAlerts bool   `json:"attendanceAlerts"`
}

type AccountSettings struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
}

type AccessibilitySettings struct {
	LargeText    bool `json:"largeText"`
	HighContrast bool `json:"highContrast"`
	ReduceMotion bool `json:"reduceMotion"`
}

// Subscription is read-only billing information.
type Subscription struct {
	Plan              string  `json:"plan"`
	Status            string  `json:"status"`
	NextBillingDate   string  `json:"nextBillingDate"`
	NextBillingAmount float64 `json:"nextBillingAmount"`
}

// Device is a read-only signed-in device.
type Device struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Active   bool   `json:"active"`
}

// Settings groups every panel. Only the editable panels are persisted.
type Settings struct {
	Profile       ProfileSettings       `json:"profile"`
	Notifications NotificationSettings  `json:"notifications"`
	Academic      AcademicSettings      `json:"academic"`
	Account       AccountSettings       `json:"account"`
	Accessibility AccessibilitySettings `json:"accessibility"`
	Subscription  Subscription          `json:"subscription"`
	Devices       []Device              `json:"devices"`
}

// SettingsUpdate carries one section's raw JSON body.
type SettingsUpdate struct {
	Section SettingsSection
	Body    json.RawMessage
}
