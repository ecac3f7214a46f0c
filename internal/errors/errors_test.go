package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate username", ErrDuplicateUsername, http.StatusConflict, "DUPLICATE_USERNAME"},
		{"duplicate email", ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"message not found", ErrMessageNotFound, http.StatusNotFound, "MESSAGE_NOT_FOUND"},
		{"invalid amount", ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
		{"invalid palette", ErrInvalidPalette, http.StatusBadRequest, "INVALID_PALETTE"},
		{"wrapped sentinel keeps its mapping", fmt.Errorf("check username: %w", ErrDuplicateUsername), http.StatusConflict, "DUPLICATE_USERNAME"},
		{"unknown error collapses to 500", errors.New("driver: bad connection"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetail(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dial tcp 10.0.0.5:3306: connection refused"))
	assert.Equal(t, "internal server error", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "10.0.0.5")
}
