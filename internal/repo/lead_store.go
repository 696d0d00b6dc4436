package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"leadtrack/internal/models"
)

var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed input field. The message
// is safe to hand to the client verbatim.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

type LeadStore struct{ db *gorm.DB }

func NewLeadStore(db *gorm.DB) *LeadStore { return &LeadStore{db: db} }

// CreateLeadInput carries the writable fields of a new lead.
type CreateLeadInput struct {
	Name         string
	Email        string
	PhoneNumber  string
	Status       models.LeadStatus
	DateOfCall   *datatypes.Date
	LastCallDate *datatypes.Date
	Notes        string
}

// LeadPatch is a partial update: nil fields are left untouched.
type LeadPatch struct {
	Name         *string
	Email        *string
	PhoneNumber  *string
	Status       *models.LeadStatus
	DateOfCall   *datatypes.Date
	LastCallDate *datatypes.Date
	Notes        *string
}

// ListByOwner returns every lead of userID, newest-created first.
func (s *LeadStore) ListByOwner(ctx context.Context, userID uint) ([]models.Lead, error) {
	leads := []models.Lead{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

// Create validates required fields, defaults the status and persists a new
// lead owned by userID.
func (s *LeadStore) Create(ctx context.Context, userID uint, in CreateLeadInput) (*models.Lead, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Msg: "name is required"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, &ValidationError{Msg: "email is required"}
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		return nil, &ValidationError{Msg: "phoneNumber is required"}
	}
	if in.Status == "" {
		in.Status = models.StatusNew
	}
	if !in.Status.Valid() {
		return nil, &ValidationError{Msg: "unknown status: " + string(in.Status)}
	}

	lead := models.Lead{
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Status:       in.Status,
		DateOfCall:   in.DateOfCall,
		LastCallDate: in.LastCallDate,
		Notes:        in.Notes,
		UserID:       userID,
	}
	if err := s.db.WithContext(ctx).Create(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// Update applies patch to the lead matching both leadID and userID.
// A lead owned by someone else looks exactly like a missing one.
func (s *LeadStore) Update(ctx context.Context, userID, leadID uint, patch LeadPatch) (*models.Lead, error) {
	var lead models.Lead
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", leadID, userID).
		First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, &ValidationError{Msg: "name must not be empty"}
		}
		lead.Name = *patch.Name
	}
	if patch.Email != nil {
		if strings.TrimSpace(*patch.Email) == "" {
			return nil, &ValidationError{Msg: "email must not be empty"}
		}
		lead.Email = *patch.Email
	}
	if patch.PhoneNumber != nil {
		if strings.TrimSpace(*patch.PhoneNumber) == "" {
			return nil, &ValidationError{Msg: "phoneNumber must not be empty"}
		}
		lead.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, &ValidationError{Msg: "unknown status: " + string(*patch.Status)}
		}
		lead.Status = *patch.Status
	}
	if patch.DateOfCall != nil {
		lead.DateOfCall = patch.DateOfCall
	}
	if patch.LastCallDate != nil {
		lead.LastCallDate = patch.LastCallDate
	}
	if patch.Notes != nil {
		lead.Notes = *patch.Notes
	}

	if err := s.db.WithContext(ctx).Save(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// Delete removes the lead matching both leadID and userID.
func (s *LeadStore) Delete(ctx context.Context, userID, leadID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", leadID, userID).
		Delete(&models.Lead{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertBatch persists leads in one batched insert. Used by the CSV
// import; rows are pre-validated by the importer.
func (s *LeadStore) InsertBatch(ctx context.Context, leads []models.Lead) (int, error) {
	if len(leads) == 0 {
		return 0, nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(&leads, 100).Error; err != nil {
		return 0, err
	}
	return len(leads), nil
}
