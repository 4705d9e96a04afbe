package listing

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when Submit is called without a verified
// identity. Posting is never allowed to fall back to an anonymous author.
var ErrUnauthenticated = errors.New("authentication required")

// ErrStoreUnavailable wraps persistence failures. These are transient from
// the caller's point of view and safe to retry; validation errors are not.
var ErrStoreUnavailable = errors.New("store unavailable")

// Code identifies a validation failure. Every code is client-correctable.
type Code string

const (
	CodeMissingField         Code = "missing_field"
	CodeInvalidEmail         Code = "invalid_email"
	CodeInvalidDate          Code = "invalid_date"
	CodeDeadlineInPast       Code = "deadline_in_past"
	CodeDeadlineBeforeLatest Code = "deadline_before_latest"
	CodeInvalidWorkType      Code = "invalid_work_type"
)

// ValidationError reports the first failed validation step for a submitted
// posting. Field is set for missing_field; Max carries the prevailing
// maximum deadline (YYYY-MM-DD) for deadline_before_latest.
type ValidationError struct {
	Code  Code   `json:"code"`
	Field string `json:"field,omitempty"`
	Max   string `json:"max,omitempty"`
}

func (e *ValidationError) Error() string {
	switch e.Code {
	case CodeMissingField:
		return fmt.Sprintf("%s is required", e.Field)
	case CodeInvalidEmail:
		return "posterEmail is not a valid email address"
	case CodeInvalidDate:
		return "deadline is not a valid date (expected YYYY-MM-DD)"
	case CodeDeadlineInPast:
		return "deadline cannot be in the past"
	case CodeDeadlineBeforeLatest:
		return fmt.Sprintf("deadline cannot be before the latest posted job deadline: %s", e.Max)
	case CodeInvalidWorkType:
		return "workType must be one of: full-time, part-time, internship, contract, remote"
	default:
		return string(e.Code)
	}
}
