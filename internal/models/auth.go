package models

// LoginRequest holds login form input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,looseemail"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupRequest holds the registration form. ConfirmPassword is checked
// locally and never forwarded.
type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,looseemail"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// AuthResult is returned on successful login or signup.
type AuthResult struct {
	Token      string `json:"token,omitempty"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	Message    string `json:"message,omitempty"`
}

// SessionState reports the stored auth markers.
type SessionState struct {
	Authenticated bool   `json:"authenticated"`
	IsLoggedIn    bool   `json:"isLoggedIn"`
	Email         string `json:"email,omitempty"`
}
