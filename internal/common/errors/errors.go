// Package errors provides standardized error handling for the admission wizard.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Error Kinds
// ==========================

// Kind classifies how an error is recovered at the screen boundary.
type Kind string

const (
	// KindValidation is a synchronous, locally recovered form error.
	// Never sent to the server.
	KindValidation Kind = "VALIDATION"
	// KindTransport covers network and server failures. Surfaced verbatim
	// as a blocking alert, no automatic retry.
	KindTransport Kind = "TRANSPORT"
	// KindUnauthorized triggers a forced logout and cache clear.
	KindUnauthorized Kind = "UNAUTHORIZED"
	// KindFeatureUnavailable marks an optional native capability missing
	// from the current build. Degrades to an informational alert.
	KindFeatureUnavailable Kind = "FEATURE_UNAVAILABLE"
	// KindInternal is the catch-all for unexpected faults.
	KindInternal Kind = "INTERNAL"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed       ErrorCode = "VALIDATION_FAILED"
	ErrCodeRequestFailed          ErrorCode = "REQUEST_FAILED"
	ErrCodeServerRejected         ErrorCode = "SERVER_REJECTED"
	ErrCodeUnauthorized           ErrorCode = "UNAUTHORIZED"
	ErrCodePaymentRequired        ErrorCode = "PAYMENT_REQUIRED"
	ErrCodeDisclaimerRequired     ErrorCode = "DISCLAIMER_REQUIRED"
	ErrCodePaymentSDKMissing      ErrorCode = "PAYMENT_SDK_MISSING"
	ErrCodeSignatureModuleMissing ErrorCode = "SIGNATURE_MODULE_MISSING"
	ErrCodePreferenceLimit        ErrorCode = "PREFERENCE_LIMIT"
	ErrCodeUploadFailed           ErrorCode = "UPLOAD_FAILED"
	ErrCodePDFUnavailable         ErrorCode = "PDF_UNAVAILABLE"
	ErrCodeInternal               ErrorCode = "INTERNAL_ERROR"
)

// AppError is the structured error carried across the client core.
type AppError struct {
	Kind      Kind                   `json:"kind"`
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("AppError[%s/%s]: %s", e.Kind, e.Code, e.Message)
}

// ==========================
// 2. Constructors
// ==========================

// NewValidationError wraps the first failing rule's message for the user.
func NewValidationError(message string) *AppError {
	return &AppError{
		Kind:      KindValidation,
		Code:      ErrCodeValidationFailed,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTransportError wraps a network-level failure (request never completed).
func NewTransportError(err error) *AppError {
	return &AppError{
		Kind:      KindTransport,
		Code:      ErrCodeRequestFailed,
		Message:   "Request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewServerError surfaces the server-provided message verbatim, falling back
// to a generic message when the body carried none.
func NewServerError(status int, serverMessage string) *AppError {
	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status %d", status)
	}
	return &AppError{
		Kind:      KindTransport,
		Code:      ErrCodeServerRejected,
		Message:   msg,
		Retryable: status >= 500,
		Metadata:  map[string]interface{}{"status": status},
		Timestamp: time.Now().UTC(),
	}
}

// NewUnauthorizedError forces a logout when it reaches the screen boundary.
func NewUnauthorizedError() *AppError {
	return &AppError{
		Kind:      KindUnauthorized,
		Code:      ErrCodeUnauthorized,
		Message:   "Session expired, please sign in again",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPaymentRequiredError blocks final submission before payment completes.
func NewPaymentRequiredError() *AppError {
	return &AppError{
		Kind:      KindValidation,
		Code:      ErrCodePaymentRequired,
		Message:   "Please complete payment before submitting",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDisclaimerRequiredError blocks final submission without acceptance.
func NewDisclaimerRequiredError() *AppError {
	return &AppError{
		Kind:      KindValidation,
		Code:      ErrCodeDisclaimerRequired,
		Message:   "Please accept the disclaimer",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFeatureUnavailableError reports a missing optional capability.
func NewFeatureUnavailableError(code ErrorCode, capability string) *AppError {
	return &AppError{
		Kind:      KindFeatureUnavailable,
		Code:      code,
		Message:   fmt.Sprintf("%s requires a development build", capability),
		Details:   fmt.Sprintf("capability: %s", capability),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPreferenceLimitError reports an out-of-bounds preference mutation.
func NewPreferenceLimitError(message string) *AppError {
	return &AppError{
		Kind:      KindValidation,
		Code:      ErrCodePreferenceLimit,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUploadFailedError wraps a document upload failure.
func NewUploadFailedError(documentType string, err error) *AppError {
	return &AppError{
		Kind:      KindTransport,
		Code:      ErrCodeUploadFailed,
		Message:   "Upload failed",
		Details:   fmt.Sprintf("type: %s, error: %s", documentType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError is the normalization target for unexpected faults.
func NewInternalError(err error) *AppError {
	return &AppError{
		Kind:      KindInternal,
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Inspection helpers
// ==========================

// AsAppError normalizes any error to an *AppError.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// IsUnauthorized reports whether err should force a logout.
func IsUnauthorized(err error) bool {
	return IsKind(err, KindUnauthorized)
}
