package http

import (
	"errors"
	"net/http"

	"proofparcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed API response.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var statusByKind = map[errs.Kind]int{
	errs.KindNotFound:     http.StatusNotFound,
	errs.KindUnauthorized: http.StatusForbidden,
	errs.KindInvalidState: http.StatusConflict,
	errs.KindInvalidInput: http.StatusBadRequest,
	errs.KindOtpMismatch:  http.StatusUnprocessableEntity,
	errs.KindOtpExpired:   http.StatusGone,
	errs.KindInternal:     http.StatusInternalServerError,

	errs.KindArtifactNotMinted: http.StatusInternalServerError,
}

// StatusOf maps an error to the HTTP status of its kind.
func StatusOf(err error) int {
	if status, ok := statusByKind[errs.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	status := StatusOf(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		message = http.StatusText(status)
	}

	// Confirmed without an artifact: name the delivery, never the cause.
	var notMinted *errs.ArtifactNotMintedError
	if errors.As(err, &notMinted) {
		message = errs.NewArtifactNotMintedError(notMinted.DeliveryID, nil).Error()
	}

	return c.JSON(status, Error{
		Code:    status,
		Kind:    string(kind),
		Message: message,
	})
}

// errorHandler renders errors that never reached a handler, such as unknown
// routes, in the same shape as handler errors.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = s.fail(c, err)
		return
	}

	kind := errs.KindInternal
	switch {
	case he.Code == http.StatusNotFound:
		kind = errs.KindNotFound
	case he.Code < http.StatusInternalServerError:
		kind = errs.KindInvalidInput
	}
	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok {
		message = m
	}
	_ = c.JSON(he.Code, Error{Code: he.Code, Kind: string(kind), Message: message})
}
