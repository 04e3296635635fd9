package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/100adim/project-cost-manager/internal/middleware"
	"github.com/100adim/project-cost-manager/internal/service"
)

const internalErrorMessage = "Internal server error"

type Handler struct {
	users   service.Users
	costs   service.Costs
	reports service.Reports
	logs    service.RequestLogs
	timeout time.Duration
}

func New(users service.Users, costs service.Costs, reports service.Reports, logs service.RequestLogs, timeout time.Duration) *Handler {
	return &Handler{
		users:   users,
		costs:   costs,
		reports: reports,
		logs:    logs,
		timeout: timeout,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("handler couldn't encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service errors to status codes. Unknown errors are
// logged and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Reason)
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Error())
	default:
		logrus.WithField("request_id", middleware.GetRequestID(r.Context())).
			Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

// decodeBody reads a JSON body into v, reporting malformed bodies as 400
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s has an invalid type", typeErr.Field))
		return false
	}
	writeError(w, http.StatusBadRequest, "Invalid JSON body")
	return false
}

// NotFound answers unknown routes
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}
