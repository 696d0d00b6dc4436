package models

import (
	"encoding/json"
	"net/http"
)

// Message is the envelope for errors and confirmations: every non-2xx
// response (and delete/upload confirmations) is {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}
