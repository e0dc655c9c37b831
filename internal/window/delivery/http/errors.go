package http

import (
	"errors"
	"net/http"

	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/window"
	pkgErrors "table-checkbox-sync/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")

// mapError translates domain errors into HTTP errors. It returns nil for
// errors the client cannot act on.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, window.ErrWindowNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "window not found")
	case errors.Is(err, window.ErrInvalidEvent):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid event")
	case errors.Is(err, window.ErrInvalidInput), errors.Is(err, document.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, document.ErrLineOutOfRange):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "line out of range")
	case errors.Is(err, document.ErrDocumentNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "document not found")
	default:
		var he *pkgErrors.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return nil
	}
}
