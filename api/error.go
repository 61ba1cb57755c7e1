package api

type ErrorCode string

const (
	MissingName          ErrorCode = "MissingName"
	MissingEmail         ErrorCode = "MissingEmail"
	InvalidEmailFormat   ErrorCode = "InvalidEmailFormat"
	AlreadyRegistered    ErrorCode = "AlreadyRegistered"
	SessionExpired       ErrorCode = "SessionExpired"
	DeliveryFailed       ErrorCode = "DeliveryFailed"
	InputValidationError ErrorCode = "InputValidationError"
	InternalError        ErrorCode = "InternalError"
)

type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
