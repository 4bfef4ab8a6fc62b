package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bfhl-hq/bfhl/pkg/api/types"
	"bfhl-hq/bfhl/pkg/classify"
)

// AssembleEnvelope combines the identity and a classification result into
// the success envelope. highest_alphabet is set only when res has one.
func AssembleEnvelope(id types.Identity, res classify.Result) *types.Envelope {
	env := &types.Envelope{
		IsSuccess:  true,
		UserID:     id.UserID,
		Email:      id.Email,
		RollNumber: id.RollNumber,
		Numbers:    res.Numbers,
		Alphabets:  res.Alphabets,
	}
	if env.Numbers == nil {
		env.Numbers = []string{}
	}
	if env.Alphabets == nil {
		env.Alphabets = []string{}
	}
	if res.HasHighestAlphabet() {
		env.HighestAlphabet = res.HighestAlphabet
	}
	return env
}

// WriteJSONResponse writes v as JSON with the given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// WriteErrorResponse writes an error body with the given status code.
func WriteErrorResponse(w http.ResponseWriter, status int, body *types.ErrorResponse) {
	WriteJSONResponse(w, status, body)
}

// WriteError maps err with HandleError and writes the result.
func WriteError(w http.ResponseWriter, err error) int {
	status, body := HandleError(err)
	WriteErrorResponse(w, status, body)
	return status
}

// WriteStatus writes the error body associated with status.
func WriteStatus(w http.ResponseWriter, status int) {
	WriteErrorResponse(w, status, types.NewErrorResponse(types.StatusMessage(status)))
}
