package leadapi

import (
	"context"

	"gorm.io/datatypes"

	"leadtrack/internal/models"
	"leadtrack/internal/repo"
)

// Store is the minimal lead-repository contract the handlers need.
type Store interface {
	ListByOwner(ctx context.Context, userID uint) ([]models.Lead, error)
	Create(ctx context.Context, userID uint, in repo.CreateLeadInput) (*models.Lead, error)
	Update(ctx context.Context, userID, leadID uint, patch repo.LeadPatch) (*models.Lead, error)
	Delete(ctx context.Context, userID, leadID uint) error
	InsertBatch(ctx context.Context, leads []models.Lead) (int, error)
}

type createLeadRequest struct {
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	PhoneNumber  string            `json:"phoneNumber"`
	Status       models.LeadStatus `json:"status"`
	DateOfCall   *datatypes.Date   `json:"dateOfCall"`
	LastCallDate *datatypes.Date   `json:"lastCallDate"`
	Notes        string            `json:"notes"`
}

// updateLeadRequest is a partial update: absent fields stay untouched.
type updateLeadRequest struct {
	Name         *string            `json:"name"`
	Email        *string            `json:"email"`
	PhoneNumber  *string            `json:"phoneNumber"`
	Status       *models.LeadStatus `json:"status"`
	DateOfCall   *datatypes.Date    `json:"dateOfCall"`
	LastCallDate *datatypes.Date    `json:"lastCallDate"`
	Notes        *string            `json:"notes"`
}

type uploadResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
