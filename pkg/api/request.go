package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"bfhl-hq/bfhl/pkg/api/types"
)

const (
	// DefaultMaxBodyBytes bounds request bodies when no limit is configured.
	DefaultMaxBodyBytes = 1 << 20

	// RequestIDHeader is the HTTP header for request ID propagation.
	RequestIDHeader = "X-Request-ID"
)

// ValidateBody checks that body is a JSON object whose data member is an
// array of strings and returns that array in order. Other members are
// ignored. On failure it returns a *ValidationError and no tokens.
func ValidateBody(body []byte) ([]string, error) {
	req, err := DecodeClassifyRequest(body)
	if err != nil {
		return nil, err
	}
	return req.Data, nil
}

// DecodeClassifyRequest decodes body into a ClassifyRequest. Only the
// lower-case data member is read; each element must be a JSON string.
func DecodeClassifyRequest(body []byte) (*types.ClassifyRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &ValidationError{Reason: ReasonMalformedJSON, Detail: "empty body"}
	}
	if !json.Valid(trimmed) {
		return nil, &ValidationError{Reason: ReasonMalformedJSON, Detail: "body is not valid JSON"}
	}
	if trimmed[0] != '{' {
		return nil, &ValidationError{Reason: ReasonNotObject, Detail: "body must be a JSON object"}
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return nil, &ValidationError{Reason: ReasonMalformedJSON, Detail: err.Error()}
	}

	raw, ok := members["data"]
	if !ok {
		return nil, &ValidationError{Reason: ReasonMissingData, Detail: `missing required field "data"`}
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return nil, &ValidationError{Reason: ReasonNullData, Detail: `field "data" must not be null`}
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, &ValidationError{Reason: ReasonNotArray, Detail: `field "data" must be an array`}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, &ValidationError{Reason: ReasonNotArray, Detail: err.Error()}
	}

	req := &types.ClassifyRequest{Data: make([]string, len(elems))}
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '"' {
			return nil, &ValidationError{
				Reason: ReasonNonStringElement,
				Detail: fmt.Sprintf("data[%d] must be a string", i),
			}
		}
		if err := json.Unmarshal(elem, &req.Data[i]); err != nil {
			return nil, &ValidationError{Reason: ReasonNonStringElement, Detail: err.Error()}
		}
	}

	return req, nil
}

// ParseClassifyRequest reads at most maxBytes of the request body and
// validates it with ValidateBody. A body larger than maxBytes yields a
// *RequestTooLargeError. A non-positive maxBytes selects DefaultMaxBodyBytes.
func ParseClassifyRequest(r *http.Request, maxBytes int64) ([]string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	if r.ContentLength > maxBytes {
		return nil, &RequestTooLargeError{Limit: maxBytes}
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &RequestTooLargeError{Limit: maxBytes}
		}
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if int64(len(body)) > maxBytes {
		return nil, &RequestTooLargeError{Limit: maxBytes}
	}

	return ValidateBody(body)
}
