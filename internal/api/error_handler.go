package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verdant-labs/greengauge/internal/engine"
)

// ErrorResponse is the JSON error body returned for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Field   string `json:"field,omitempty"`
}

// httpErrorHandler maps error kinds onto HTTP statuses: invalid engine
// input becomes 400, echo's own HTTP errors keep their status, everything
// else is a 500.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	field := ""

	var invalid *engine.InvalidInputError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &invalid):
		code = http.StatusBadRequest
		field = invalid.Field
	case errors.As(err, &httpErr):
		code = httpErr.Code
	}

	_ = c.JSON(code, ErrorResponse{
		Message: err.Error(),
		Code:    code,
		Field:   field,
	})
}
