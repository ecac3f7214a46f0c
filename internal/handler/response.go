package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// respondError maps a domain error to its HTTP status. Unrecognized errors
// surface as a generic 500 so internal detail never leaks.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, Response{Success: false, Message: httpErr.Message})
}

func respondValidation(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Response{Success: false, Message: message})
}
