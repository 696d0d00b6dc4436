package authapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"leadtrack/internal/logs"
	"leadtrack/internal/middleware"
	"leadtrack/internal/models"
	"leadtrack/internal/repo"
)

func NewHandler(users Users, tokens TokenIssuer) *Handler {
	return &Handler{users: users, tokens: tokens}
}

type Handler struct {
	users  Users
	tokens TokenIssuer
}

// Register creates an account and logs it in: the response carries a
// fresh token alongside the public user fields.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var ve *repo.ValidationError
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			models.WriteMessage(w, http.StatusBadRequest, "User already exists")
		case errors.As(err, &ve):
			models.WriteMessage(w, http.StatusBadRequest, ve.Msg)
		default:
			logs.Logger.Errorf("register: %v", err)
			models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		logs.Logger.Errorf("issue token: %v", err)
		models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	models.WriteJSON(w, http.StatusCreated, authResponse{Token: token, User: user.Public()})
}

// Login validates credentials and issues a token. Unknown email and wrong
// password produce the same response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			models.WriteMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		logs.Logger.Errorf("login: %v", err)
		models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		logs.Logger.Errorf("issue token: %v", err)
		models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	models.WriteJSON(w, http.StatusOK, authResponse{Token: token, User: user.Public()})
}

// Me resolves the bearer token to the caller's public profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		models.WriteMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			models.WriteMessage(w, http.StatusNotFound, "User not found")
			return
		}
		logs.Logger.Errorf("me: %v", err)
		models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	models.WriteJSON(w, http.StatusOK, user.Public())
}
