package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpovich/identity-server/internal/model"
)

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: model.ErrNotFound, want: http.StatusNotFound},
		{name: "invalid token", err: model.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "not token owner", err: model.ErrNotTokenOwner, want: http.StatusForbidden},
		{name: "invalid credentials", err: model.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "duplicate claim", err: model.ErrDuplicateClaim, want: http.StatusConflict},
		{name: "empty avatar path", err: model.ErrEmptyAvatarPath, want: http.StatusBadRequest},
		{name: "unknown role", err: model.ErrRoleNotFound, want: http.StatusBadRequest},
		{name: "wrapped sentinel", err: errors.Join(errors.New("ctx"), model.ErrNotFound), want: http.StatusNotFound},
		{name: "unexpected error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, handleError(c, tt.err))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRespondResult(t *testing.T) {
	t.Parallel()

	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, respondResult(e.NewContext(req, rec), model.Success()))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	rec = httptest.NewRecorder()
	failed := model.Failed(model.ResultError{Code: model.ResultCodeStoreFailure, Description: "boom"})
	require.NoError(t, respondResult(e.NewContext(req, rec), failed))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ResultCodeStoreFailure)
}
