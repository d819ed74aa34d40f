package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkarpovich/identity-server/internal/model"
)

func handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, model.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	case errors.Is(err, model.ErrNotTokenOwner):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "refresh token belongs to another user"})
	case errors.Is(err, model.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	case errors.Is(err, model.ErrDuplicateClaim):
		return c.JSON(http.StatusConflict, echo.Map{"error": "user already has a claim of this type"})
	case errors.Is(err, model.ErrEmptyAvatarPath):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "avatar path cannot be empty"})
	case errors.Is(err, model.ErrRoleNotFound):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}

// respondResult renders a structured mutation result: 200 when it succeeded,
// 422 with the error list when the store rejected the mutation.
func respondResult(c echo.Context, result model.Result) error {
	if !result.Succeeded {
		return c.JSON(http.StatusUnprocessableEntity, result)
	}
	return c.JSON(http.StatusOK, result)
}
