package authapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the auth endpoints. register/login are public;
// /auth/me sits behind the token guard.
func RegisterRoutes(r *mux.Router, h *Handler, authMW mux.MiddlewareFunc) {
	sub := r.PathPrefix("/auth").Subrouter()
	sub.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	sub.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	me := r.PathPrefix("/auth").Subrouter()
	me.Use(authMW)
	me.HandleFunc("/me", h.Me).Methods(http.MethodGet)
}
