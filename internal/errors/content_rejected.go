package errors

import (
	stderrors "errors"
	"fmt"
)

// ContentRejectedError marks a fetched payload that was discarded before it
// reached extraction: an empty body, an undersized PDF, or a volume with no
// download link. Rejection is an expected per-item outcome, not a fault in
// the pipeline itself.
type ContentRejectedError struct {
	Reason string
}

func (e *ContentRejectedError) Error() string {
	return e.Reason
}

// NewContentRejected creates a ContentRejectedError with a formatted reason.
func NewContentRejected(format string, args ...any) *ContentRejectedError {
	return &ContentRejectedError{Reason: fmt.Sprintf(format, args...)}
}

// IsContentRejected reports whether err is a ContentRejectedError (even when wrapped).
func IsContentRejected(err error) bool {
	var rejErr *ContentRejectedError
	return stderrors.As(err, &rejErr)
}
