package handler

import (
	"net/http"

	"github.com/100adim/project-cost-manager/internal/service"
)

func (h *Handler) AddCost(w http.ResponseWriter, r *http.Request) {
	var input service.CostInput
	if !decodeBody(w, r, &input) {
		return
	}
	ctx, cancel := h.context(r)
	defer cancel()

	cost, err := h.costs.Add(ctx, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cost)
}
