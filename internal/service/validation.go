package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// Form copy shown next to offending fields.
const (
	msgNameRequired     = "Name is required."
	msgNameTooShort     = "Name must be at least 3 characters."
	msgInvalidEmail     = "Please enter a valid email address."
	msgPasswordTooShort = "Password must be at least 6 characters long."
	msgPasswordMismatch = "Passwords do not match."
	msgPasswordRequired = "Both password fields are required."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like local@domain.tld without
// whitespace.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NewValidator returns a validator that reports JSON field names and knows
// the looseemail tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	return v
}

// fieldMessages maps "field.tag" or "field" to inline copy.
type fieldMessages map[string]string

// validationError converts validator output into a VALIDATION_ERROR with
// one message per field. The first failing rule of a field wins.
func validationError(err error, messages fieldMessages) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		switch {
		case messages[name+"."+fe.Tag()] != "":
			fields[name] = messages[name+"."+fe.Tag()]
		case messages[name] != "":
			fields[name] = messages[name]
		default:
			fields[name] = name + " is invalid"
		}
	}
	return appErrors.Validation(fields)
}
