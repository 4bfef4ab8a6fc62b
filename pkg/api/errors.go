package api

import (
	"errors"
	"fmt"
	"net/http"

	"bfhl-hq/bfhl/pkg/api/types"
)

// Validation failure reasons. They label the validation_failures_total
// metric and appear in logs, never in response bodies.
const (
	ReasonMalformedJSON    = "malformed_json"
	ReasonNotObject        = "not_object"
	ReasonMissingData      = "missing_data"
	ReasonNullData         = "null_data"
	ReasonNotArray         = "not_array"
	ReasonNonStringElement = "non_string_element"
	ReasonBodyTooLarge     = "body_too_large"
)

// ValidationError reports a request body that does not have the shape
// {"data": [string, ...]}.
type ValidationError struct {
	// Reason is one of the Reason* constants.
	Reason string

	// Detail describes the problem for logs.
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input (%s): %s", e.Reason, e.Detail)
}

// RequestTooLargeError reports a body exceeding the configured limit.
type RequestTooLargeError struct {
	Limit int64
}

func (e *RequestTooLargeError) Error() string {
	return fmt.Sprintf("request body exceeds maximum size of %d bytes", e.Limit)
}

// HandleError maps an error to its HTTP status and response body.
// Validation errors map to 400, oversize bodies to 413, and everything else
// to 500 with a generic message.
//
// Example usage:
//
//	if err != nil {
//	    status, body := api.HandleError(err)
//	    api.WriteErrorResponse(w, status, body)
//	    return
//	}
func HandleError(err error) (int, *types.ErrorResponse) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest, types.NewInvalidInputError()
	}

	var sizeErr *RequestTooLargeError
	if errors.As(err, &sizeErr) {
		return http.StatusRequestEntityTooLarge, types.NewErrorResponse(types.MessageTooLarge)
	}

	return http.StatusInternalServerError, types.NewServerError()
}

// FailureReason returns the validation reason carried by err, or "" when err
// is not a validation or size error.
func FailureReason(err error) string {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Reason
	}
	var sizeErr *RequestTooLargeError
	if errors.As(err, &sizeErr) {
		return ReasonBodyTooLarge
	}
	return ""
}
