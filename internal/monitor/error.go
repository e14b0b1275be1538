package monitor

import "errors"

var (
	ErrMonitorNotFound      = errors.New("monitor not found")
	ErrInvalidStatus        = errors.New("invalid monitor status")
	ErrHasPendingCandidates = errors.New("monitor has pending candidates")
)
