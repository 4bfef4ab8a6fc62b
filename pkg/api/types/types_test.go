package types

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_JSON(t *testing.T) {
	env := Envelope{
		IsSuccess:  true,
		UserID:     "john_doe_17091999",
		Email:      "john@xyz.com",
		RollNumber: "ABCD123",
		Numbers:    []string{},
		Alphabets:  []string{},
	}

	b, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"is_success": true,
		"user_id": "john_doe_17091999",
		"email": "john@xyz.com",
		"roll_number": "ABCD123",
		"numbers": [],
		"alphabets": []
	}`, string(b))

	env.HighestAlphabet = "M"
	b, err = json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"highest_alphabet":"M"`)
}

func TestErrorResponse_JSON(t *testing.T) {
	b, err := json.Marshal(NewInvalidInputError())
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_success": false, "message": "Invalid input format"}`, string(b))

	b, err = json.Marshal(NewServerError())
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_success": false, "message": "Internal server error"}`, string(b))
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, MessageInvalidInput, StatusMessage(http.StatusBadRequest))
	assert.Equal(t, MessageTooLarge, StatusMessage(http.StatusRequestEntityTooLarge))
	assert.Equal(t, MessageTimeout, StatusMessage(http.StatusGatewayTimeout))
	assert.Equal(t, MessageInternalError, StatusMessage(http.StatusTeapot))
}
