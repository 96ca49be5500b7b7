// Package failure classifies errors returned by the document store and the
// identity provider into the user-facing messages of the preferences screen.
package failure

import "fmt"

// ProviderError is an error reported by an external provider, carrying the
// provider's machine-readable code.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

// New returns a ProviderError with the given code and message.
func New(code, message string) *ProviderError {
	return &ProviderError{Code: code, Message: message}
}

// Wrap attaches a provider code to err.
func Wrap(code string, err error) *ProviderError {
	pe := &ProviderError{Code: code, Err: err}
	if err != nil {
		pe.Message = err.Error()
	}
	return pe
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ErrorCode returns the provider code.
func (e *ProviderError) ErrorCode() string { return e.Code }

// Provider codes produced by this service's own adapters.
const (
	CodeRequiresRecentLogin = "auth/requires-recent-login"
	CodeUserNotFound        = "auth/user-not-found"
	CodeEmailInUse          = "auth/email-already-in-use"
	CodeInvalidEmail        = "auth/invalid-email"
	CodeOperationNotAllowed = "auth/operation-not-allowed"
	CodeNetworkFailed       = "auth/network-request-failed"
	CodeQuotaExceeded       = "auth/quota-exceeded"
	CodeTooManyRequests     = "auth/too-many-requests"
	CodePermissionDenied    = "permission-denied"
	CodeUnavailable         = "unavailable"
	CodeDeadlineExceeded    = "deadline-exceeded"
	CodeResourceExhausted   = "resource-exhausted"
)
