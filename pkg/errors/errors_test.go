package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorWrapsUnknown(t *testing.T) {
	err := FromError(fmt.Errorf("boom"))
	assert.Equal(t, ErrInternal.Code, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.EqualError(t, err.Unwrap(), "boom")
}

func TestCloneMatchesPredefined(t *testing.T) {
	err := fmt.Errorf("verify: %w", Clone(ErrCodeExpired, "too late"))
	assert.True(t, stdErrors.Is(err, ErrCodeExpired))
	assert.False(t, stdErrors.Is(err, ErrCodeRequired))
	assert.Equal(t, "too late", FromError(err).Message)
}

func TestValidationCarriesFields(t *testing.T) {
	err := Validation(map[string]string{"email": "Please enter a valid email address."})
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Please enter a valid email address.", err.Fields["email"])
	assert.Nil(t, ErrValidation.Fields)
}
