package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"car-fleet-api/internal/model"
	"car-fleet-api/pkg/apierror"
)

type errorEnvelope struct {
	Error *apierror.APIError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps an error to the one error envelope every handler uses.
// Anything unclassified is logged with its detail and reported to the
// caller as an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := apierror.New("INTERNAL_ERROR", "unexpected server error", status)

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body = apiErr
	case errors.Is(err, model.ErrCarNotFound):
		status = http.StatusNotFound
		body = apierror.New("NOT_FOUND", "car not found", status)
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		body = apierror.New("NOT_FOUND", "user not found", status)
	case errors.Is(err, model.ErrUsernameTaken):
		status = http.StatusConflict
		body = apierror.New("ALREADY_EXISTS", "username already exists", status)
	case errors.Is(err, model.ErrEmailTaken):
		status = http.StatusConflict
		body = apierror.New("ALREADY_EXISTS", "email already exists", status)
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body = apierror.New("UNAUTHORIZED", "invalid credentials", status)
	case errors.Is(err, model.ErrInvalidToken), errors.Is(err, model.ErrTokenRequired):
		status = http.StatusUnauthorized
		body = apierror.New("UNAUTHORIZED", "invalid token", status)
	default:
		slog.Error("unhandled error", "error", err.Error())
	}

	writeJSON(w, status, errorEnvelope{Error: body})
}

func badJSON(w http.ResponseWriter) {
	writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
}
