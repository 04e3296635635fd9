package handler

import (
	"net/http"

	"github.com/100adim/project-cost-manager/internal/service"
)

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx, cancel := h.context(r)
	defer cancel()

	report, err := h.reports.Monthly(ctx, service.ReportQuery{
		ID:    q.Get("id"),
		Year:  q.Get("year"),
		Month: q.Get("month"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
