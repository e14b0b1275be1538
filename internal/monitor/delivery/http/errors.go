package http

import (
	"net/http"

	"engage-api/internal/monitor"
	pkgErrors "engage-api/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(400, "Wrong body", http.StatusBadRequest)

func (h *handler) mapError(err error) error {
	switch err {
	case monitor.ErrMonitorNotFound:
		return pkgErrors.NewNotFoundHTTPError("Monitor not found")
	case monitor.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "Status must be ACTIVE or PAUSED", http.StatusBadRequest)
	case monitor.ErrHasPendingCandidates:
		return pkgErrors.NewHTTPError(409, "Monitor has pending candidates", http.StatusConflict)
	default:
		return err
	}
}
