package handler

import "net/http"

func (h *Handler) ListRequestLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	logs, err := h.logs.List(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
