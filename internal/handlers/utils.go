package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

type contextKey string

const contextSubjectKey contextKey = "sub"

// Error codes shared across handlers.
const (
	codeAuthNoToken      = "AUTH_NO_TOKEN"
	codeAuthTokenExpired = "AUTH_TOKEN_EXPIRED"
	codeAuthInvalidToken = "AUTH_INVALID_TOKEN"
	codeInvalidRequest   = "INVALID_REQUEST"
	codeBadCredentials   = "INVALID_CREDENTIALS"
	codeUserNotFound     = "USER_NOT_FOUND"
	codeProfileNotFound  = "PROFILE_NOT_FOUND"
	codeUserExists       = "USER_EXISTS"
	codeStorageError     = "STORAGE_ERROR"
)

// ErrorResponse is the JSON envelope for every failed request. Details is
// populated only outside production mode.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func userIDFromContext(ctx context.Context) (int, error) {
	value := ctx.Value(contextSubjectKey)
	switch subject := value.(type) {
	case int:
		if subject < 1 {
			return 0, errors.New("invalid subject")
		}
		return subject, nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(subject))
		if err != nil || parsed < 1 {
			return 0, errors.New("invalid subject")
		}
		return parsed, nil
	default:
		return 0, errors.New("missing subject")
	}
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func writeErrorDetails(w http.ResponseWriter, status int, code, message, details string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message, Details: details})
}
