package handler

import "net/http"

type developer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

var team = []developer{
	{FirstName: "Roni", LastName: "Lubashevski"},
	{FirstName: "Adi", LastName: "Matok"},
}

func (h *Handler) About(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, team)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
