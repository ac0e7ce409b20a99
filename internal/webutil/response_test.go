package webutil

import (
	"database/sql/driver"
	"errors"
	"net/http"
	"testing"

	"wordvault/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", model.ErrNotFound, http.StatusNotFound},
		{"invalid input", model.ErrInvalidInput, http.StatusBadRequest},
		{"conflict", model.ErrConflict, http.StatusConflict},
		{"full group answers conflict", model.ErrGroupFull, http.StatusConflict},
		{"forbidden", model.ErrForbidden, http.StatusForbidden},
		{"unauthorized", model.ErrUnauthorized, http.StatusUnauthorized},
		{"unavailable dependency answers 503", model.ErrUnavailable, http.StatusServiceUnavailable},
		{"anything else answers 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))

			wrapped := model.NewAppError("CODE", "message", "", tt.err)
			assert.Equal(t, tt.expected, MapErrorToStatusCode(wrapped), "the wrapped sentinel decides the status")
		})
	}
}

func TestMapErrorToStatusCode_StoreError(t *testing.T) {
	badConn := model.StoreError("Failed to load the word state.", driver.ErrBadConn)
	assert.Equal(t, http.StatusServiceUnavailable, MapErrorToStatusCode(badConn))
	assert.Equal(t, "DEPENDENCY_UNAVAILABLE", badConn.Detail.Code)

	plain := model.StoreError("Failed to load the word state.", errors.New("constraint violated"))
	assert.Equal(t, http.StatusInternalServerError, MapErrorToStatusCode(plain))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", plain.Detail.Code)
}
