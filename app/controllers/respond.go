// Package controllers holds the JSON handlers of the board API. Each handler
// decides its own error statuses; unknown errors become 500.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"boardapp/app/apperrors"
	"boardapp/app/auth"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, err error, status int) {
	resp := errorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	sendJSON(w, status, resp)
}

// errorStatus pairs an error kind with the HTTP status it answers with.
type errorStatus struct {
	kind   error
	status int
}

// statusFor maps err onto the first matching status in statuses, falling
// back to 500.
func statusFor(err error, statuses []errorStatus) int {
	for _, s := range statuses {
		if errors.Is(err, s.kind) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// subject returns the account id RequireAuth stored on the request. A
// handler reached without it was mounted without the middleware.
func subject(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.SubjectFrom(r.Context())
	if !ok {
		sendError(w, "Authentication required", auth.ErrMissingToken, http.StatusUnauthorized)
	}
	return id, ok
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(apperrors.ErrValidation, err)
	}
	return nil
}
