package model

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		retryable    bool
	}{
		{"dropped connection", driver.ErrBadConn, "DEPENDENCY_UNAVAILABLE", true},
		{"wrapped dropped connection", fmt.Errorf("query: %w", driver.ErrBadConn), "DEPENDENCY_UNAVAILABLE", true},
		{"deadline exceeded", context.DeadlineExceeded, "DEPENDENCY_UNAVAILABLE", true},
		{"constraint violation", errors.New("UNIQUE constraint failed"), "INTERNAL_SERVER_ERROR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := StoreError("Failed.", tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.expectedCode, appErr.Detail.Code)
			assert.Equal(t, tt.retryable, errors.Is(appErr, ErrUnavailable))
			if tt.retryable {
				assert.ErrorIs(t, appErr, tt.err, "the original cause stays reachable")
			}
		})
	}
}
