package registration

import "fmt"

type ErrorReason string

const (
	REASON_DUPLICATE_EMAIL      ErrorReason = "DUPLICATE_EMAIL"
	REASON_SESSION_EXPIRED      ErrorReason = "SESSION_EXPIRED"
	REASON_MISSING_NAME         ErrorReason = "MISSING_NAME"
	REASON_MISSING_EMAIL        ErrorReason = "MISSING_EMAIL"
	REASON_INVALID_EMAIL_FORMAT ErrorReason = "INVALID_EMAIL_FORMAT"
	REASON_RENDER_FAILED        ErrorReason = "RENDER_FAILED"
	REASON_DELIVERY_FAILED      ErrorReason = "DELIVERY_FAILED"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewDuplicateEmailError(message string) *Error {
	return newRegistrationError(REASON_DUPLICATE_EMAIL, message, nil)
}

func NewSessionExpiredError(message string) *Error {
	return newRegistrationError(REASON_SESSION_EXPIRED, message, nil)
}

func NewMissingNameError(message string) *Error {
	return newRegistrationError(REASON_MISSING_NAME, message, nil)
}

func NewMissingEmailError(message string) *Error {
	return newRegistrationError(REASON_MISSING_EMAIL, message, nil)
}

func NewInvalidEmailFormatError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_EMAIL_FORMAT, message, cause)
}

func NewRenderFailedError(message string, cause error) *Error {
	return newRegistrationError(REASON_RENDER_FAILED, message, cause)
}

func NewDeliveryFailedError(message string, cause error) *Error {
	return newRegistrationError(REASON_DELIVERY_FAILED, message, cause)
}
