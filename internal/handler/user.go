package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/100adim/project-cost-manager/internal/service"
)

// CreateUser answers 201 for a new user and 200 when the id already exists
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input service.UserInput
	if !decodeBody(w, r, &input) {
		return
	}
	ctx, cancel := h.context(r)
	defer cancel()

	user, created, err := h.users.Create(ctx, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, user)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	users, err := h.users.List(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "id")), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	ctx, cancel := h.context(r)
	defer cancel()

	details, err := h.users.Get(ctx, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}
