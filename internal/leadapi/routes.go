package leadapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the lead endpoints behind the token guard.
func RegisterRoutes(r *mux.Router, h *Handler, authMW mux.MiddlewareFunc) {
	sub := r.PathPrefix("/leads").Subrouter()
	sub.Use(authMW)
	sub.HandleFunc("", h.List).Methods(http.MethodGet)
	sub.HandleFunc("", h.Create).Methods(http.MethodPost)
	sub.HandleFunc("/upload", h.Upload).Methods(http.MethodPost)
	sub.HandleFunc("/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	sub.HandleFunc("/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}
