package authapi

import (
	"context"

	"leadtrack/internal/models"
)

// Users is the minimal credential-store contract the handlers need.
type Users interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// TokenIssuer mints a bearer token for a user id.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is returned by both register and login: the token plus the
// public user fields, never the hash.
type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}
