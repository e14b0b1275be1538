package engagement

import "errors"

var (
	ErrRecordNotFound = errors.New("posted record not found")
)
