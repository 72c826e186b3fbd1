package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEligibleURL is returned by click serving when a campaign has no
	// URL with active status. The redirect path maps it to "no inventory".
	ErrNoEligibleURL = errors.New("no eligible url")

	// ErrProtectionViolation marks a discarded write to a protected
	// original click limit. See port.URLUpdateResult.Violation.
	ErrProtectionViolation = errors.New("original click limit is protected")

	ErrCampaignNotFound = errors.New("campaign not found")
	ErrURLNotFound      = errors.New("url not found")
	ErrErrorLogNotFound = errors.New("error log entry not found")
)

// ValidationError rejects an operator write outside the documented ranges.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransientNetworkError is a timeout, transport failure or 5xx answer from
// the ad network. Such calls are retried.
type TransientNetworkError struct {
	Endpoint   string
	StatusCode int // 0 for transport failures
	Err        error
}

func (e *TransientNetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("ad network %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ad network %s: %v", e.Endpoint, e.Err)
}

func (e *TransientNetworkError) Unwrap() error { return e.Err }

// AuthError means the access token could not be obtained or was refused.
// It fails the current tick only.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "ad network auth: " + e.Err.Error() }

func (e *AuthError) Unwrap() error { return e.Err }

// APIError is a non-retryable 4xx answer from the ad network.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ad network %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}
