package contract

import (
	"time"

	"github.com/claraval/serein/internal/domain"
)

// Result is the finished-session payload handed to the presentation layer
// and persisted for later retrieval.
type Result struct {
	SessionID   string
	CompletedAt time.Time
	Profile     domain.Profile
	Scenarios   map[domain.VariantKey]string
	Diagnostic  domain.Diagnostic
	Plan        domain.Plan
}

type ResultErrorCode string

const (
	ErrNoContent     ResultErrorCode = "NO_CONTENT"
	ErrNoSession     ResultErrorCode = "NO_SESSION"
	ErrEmptyAnswers  ResultErrorCode = "EMPTY_ANSWERS"
	ErrInternalError ResultErrorCode = "INTERNAL_ERROR"
)

type ResultError struct {
	Code    ResultErrorCode
	Message string
}

func (e *ResultError) Error() string {
	return string(e.Code) + ": " + e.Message
}
