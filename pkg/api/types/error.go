package types

import "net/http"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// IsSuccess is always false.
	IsSuccess bool `json:"is_success"`

	// Message is a fixed, client-facing description. It never carries
	// internal error details.
	Message string `json:"message"`
}

// Client-facing error messages.
const (
	MessageInvalidInput     = "Invalid input format"
	MessageInternalError    = "Internal server error"
	MessageMethodNotAllowed = "Method not allowed"
	MessageTooLarge         = "Request body too large"
	MessageTooManyRequests  = "Too many requests"
	MessageTimeout          = "Request timeout"
	MessageNotFound         = "Not found"
)

// NewErrorResponse creates an error body with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{IsSuccess: false, Message: message}
}

// NewInvalidInputError creates the 400 body for rejected input.
func NewInvalidInputError() *ErrorResponse {
	return NewErrorResponse(MessageInvalidInput)
}

// NewServerError creates the 500 body.
func NewServerError() *ErrorResponse {
	return NewErrorResponse(MessageInternalError)
}

// StatusMessage returns the client-facing message for an HTTP status code.
func StatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MessageInvalidInput
	case http.StatusNotFound:
		return MessageNotFound
	case http.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return MessageTooLarge
	case http.StatusTooManyRequests:
		return MessageTooManyRequests
	case http.StatusGatewayTimeout:
		return MessageTimeout
	default:
		return MessageInternalError
	}
}
