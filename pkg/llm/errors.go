package llm

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAuth marks missing, invalid or rejected provider credentials.
	ErrAuth = errors.New("provider authentication failed")
	// ErrQuota marks provider quota exhaustion or rate limiting.
	ErrQuota = errors.New("provider quota exceeded")
	// ErrUnavailable marks transport failures and unexpected provider responses.
	ErrUnavailable = errors.New("provider unavailable")
)

// ProviderError describes a failed generation call. It matches its Kind
// through errors.Is and unwraps to the underlying cause.
type ProviderError struct {
	Provider   string
	Kind       error
	StatusCode int
	RetryAfter time.Duration
	Err        error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Provider, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func newProviderError(provider string, kind error, status int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: kind, StatusCode: status, Err: err}
}

// kindForStatus maps an HTTP status code from a provider to an error kind.
func kindForStatus(status int) error {
	switch status {
	case 401, 403:
		return ErrAuth
	case 402, 429:
		return ErrQuota
	default:
		return ErrUnavailable
	}
}

// RetryAfterHint returns the retry delay suggested by a provider error, if any.
func RetryAfterHint(err error) (time.Duration, bool) {
	var perr *ProviderError
	if errors.As(err, &perr) && perr.RetryAfter > 0 {
		return perr.RetryAfter, true
	}
	return 0, false
}
