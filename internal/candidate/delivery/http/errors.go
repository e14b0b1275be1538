package http

import (
	"net/http"

	"engage-api/internal/candidate"
	pkgErrors "engage-api/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(400, "Wrong body", http.StatusBadRequest)

func (h *handler) mapError(err error) error {
	switch err {
	case candidate.ErrCandidateNotFound:
		return pkgErrors.NewNotFoundHTTPError("Candidate not found")
	case candidate.ErrAlreadyDecided:
		return pkgErrors.NewHTTPError(409, "Candidate already decided", http.StatusConflict)
	case candidate.ErrInvalidSortKey:
		return pkgErrors.NewHTTPError(400, "Sort key must be confidence, engagement or recency", http.StatusBadRequest)
	case candidate.ErrInvalidConfidence:
		return pkgErrors.NewHTTPError(400, "Confidence must be HIGH, MEDIUM or LOW", http.StatusBadRequest)
	case candidate.ErrForbidden:
		return pkgErrors.NewForbiddenHTTPError()
	default:
		return err
	}
}
