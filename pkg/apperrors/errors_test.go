package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := InternalError(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.ErrorIs(t, appErr, cause)

	var target *AppError
	assert.True(t, As(appErr, &target))
	assert.Equal(t, CodeInternalError, target.Code)
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("secret detail"), CodeInternalError, "system", "Internal server error", 500)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret detail")
	assert.NotContains(t, string(data), "500")
	assert.Contains(t, string(data), "Internal server error")
}

func TestValidationErrorDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "Must be a valid email address"})

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Must be a valid email address")
}

func TestDomainErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"email conflict", ErrEmailAlreadyExists, http.StatusConflict},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"insufficient permissions", ErrInsufficientPermissions, http.StatusForbidden},
		{"job not found", ErrJobNotFound, http.StatusNotFound},
		{"not job owner", ErrNotJobOwner, http.StatusForbidden},
		{"application not found", ErrApplicationNotFound, http.StatusNotFound},
		{"invalid status", ErrInvalidApplicationStatus, http.StatusBadRequest},
		{"resume required", ErrResumeRequired, http.StatusBadRequest},
		{"file too large", ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"invalid file type", ErrInvalidFileType, http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode)
		})
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	appErr := Wrap(errors.New("boom"), CodeInternalError, "system", "something failed", 500)
	assert.Contains(t, appErr.Error(), "boom")
	assert.Contains(t, appErr.Error(), "something failed")
}
