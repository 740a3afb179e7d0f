package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{"INVALID_EMAIL", http.StatusBadRequest},
		{"INVALID_STATUS", http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"TOKEN_EXPIRED", http.StatusUnauthorized},
		{"TOKEN_REVOKED", http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{"UNKNOWN_ROLE", http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{"EMAIL_TAKEN", http.StatusConflict},
		{"CODE_TAKEN", http.StatusConflict},
		{"SKU_TAKEN", http.StatusConflict},
		{"INVALID_STATE", http.StatusUnprocessableEntity},
		{ErrCodeInternal, http.StatusInternalServerError},
		// Unmapped codes must not leak as success or 4xx
		{"SOMETHING_NEW", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestListRequest_ToFilter(t *testing.T) {
	t.Run("applies defaults when empty", func(t *testing.T) {
		filter := ListRequest{}.ToFilter()
		assert.Equal(t, 1, filter.Page)
		assert.Equal(t, 20, filter.PageSize)
	})

	t.Run("overrides defaults when set", func(t *testing.T) {
		filter := ListRequest{
			Page:     3,
			PageSize: 50,
			OrderBy:  "name",
			OrderDir: "asc",
			Search:   "acme",
		}.ToFilter()
		assert.Equal(t, 3, filter.Page)
		assert.Equal(t, 50, filter.PageSize)
		assert.Equal(t, "name", filter.OrderBy)
		assert.Equal(t, "asc", filter.OrderDir)
		assert.Equal(t, "acme", filter.Search)
	})
}
