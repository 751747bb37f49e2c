package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/milkledger/server/internal/model"
	"github.com/milkledger/server/internal/testutil"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error maps to 400",
			err:        model.NewValidationError("name is required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped validation error maps to 400",
			err:        errors.Join(errors.New("context"), model.NewValidationError("bad")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "authentication error maps to 401",
			err:        model.NewAuthenticationError("unauthenticated"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "conflict error maps to 409",
			err:        model.NewConflictError("courier already exists"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "not found maps to 404",
			err:        model.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			handleError(c, testutil.MakeNoopLogger(), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestParseYearMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parses valid parameters", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{
			{Key: "year", Value: "2024"},
			{Key: "month", Value: "3"},
		}

		year, month, err := parseYearMonth(c)
		assert.NoError(t, err)
		assert.Equal(t, 2024, year)
		assert.Equal(t, 3, month)
	})

	t.Run("rejects non-numeric parameters", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{
			{Key: "year", Value: "abc"},
			{Key: "month", Value: "3"},
		}

		_, _, err := parseYearMonth(c)
		assert.Error(t, err)

		var validationErr *model.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}
