package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Issues []Issue `json:"issues"`
	Name   string  `json:"name"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type messageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GlobalErrorHandler maps application errors to response envelopes:
// validation errors become 422 with the field issues, not-found 404,
// empty-result 400, everything else a generic 500. When production is
// true the 500 body carries no diagnostic detail.
func GlobalErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			issues := ve.Issues
			if issues == nil {
				issues = []Issue{}
			}
			_ = c.JSON(http.StatusUnprocessableEntity, errorEnvelope{
				Success: false,
				Error:   errorBody{Issues: issues, Name: "ValidationError"},
			})
			return
		}

		var nfe *NotFoundError
		if errors.As(err, &nfe) {
			_ = c.JSON(http.StatusNotFound, messageEnvelope{Success: false, Message: nfe.Message})
			return
		}

		var nre *NoResultsError
		if errors.As(err, &nre) {
			_ = c.JSON(http.StatusBadRequest, messageEnvelope{Success: false, Message: nre.Message})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, messageEnvelope{Success: false, Message: msg})
			return
		}

		slog.Error("Unhandled error", "error", err, "uri", c.Request().RequestURI)
		msg := "internal server error"
		if !production {
			msg = fmt.Sprintf("internal server error: %v", err)
		}
		_ = c.JSON(http.StatusInternalServerError, messageEnvelope{Success: false, Message: msg})
	}
}
