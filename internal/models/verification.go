package models

import "time"

// VerificationStage is the step of the password reset flow.
type VerificationStage string

const (
	StageAwaitingEmail       VerificationStage = "AwaitingEmail"
	StageAwaitingCode        VerificationStage = "AwaitingCode"
	StageAwaitingNewPassword VerificationStage = "AwaitingNewPassword"
)

// VerificationSnapshot is a read-only view of a reset session.
type VerificationSnapshot struct {
	SessionID string            `json:"session_id,omitempty"`
	Stage     VerificationStage `json:"stage"`
	Email     string            `json:"email,omitempty"`
	Remaining int               `json:"remaining_seconds"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
	Notice    string            `json:"notice,omitempty"`
	Completed bool              `json:"completed"`
}

type ResetEmailRequest struct {
	Email string `json:"email"`
}

type ResetCodeRequest struct {
	Code string `json:"code"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
