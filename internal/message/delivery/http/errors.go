package http

import (
	"errors"

	"insight-srv/internal/message"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errWrongBody        = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery       = pkgErrors.NewHTTPError(400, "Wrong query")
	errMessageIDMissing = pkgErrors.NewHTTPError(400, "Message ID is required")
	errMessageNotFound  = pkgErrors.NewHTTPError(404, "Message not found")
	errAccountNotFound  = pkgErrors.NewHTTPError(404, "Account not found")
	errInvalidPlatform  = pkgErrors.NewHTTPError(400, "Invalid platform")
	errInvalidLabel     = pkgErrors.NewHTTPError(400, "Invalid label")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, message.ErrMessageNotFound):
		return errMessageNotFound
	case errors.Is(err, message.ErrAccountNotFound):
		return errAccountNotFound
	case errors.Is(err, message.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, message.ErrInvalidLabel):
		return errInvalidLabel
	default:
		panic(err)
	}
}
