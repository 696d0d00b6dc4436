package models

import (
	"time"

	"gorm.io/datatypes"
)

// LeadStatus is the sales-funnel stage of a lead.
type LeadStatus string

const (
	StatusNew       LeadStatus = "New"
	StatusContacted LeadStatus = "Contacted"
	StatusQualified LeadStatus = "Qualified"
	StatusLost      LeadStatus = "Lost"
	StatusWon       LeadStatus = "Won"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusLost, StatusWon:
		return true
	}
	return false
}

// Lead is a sales contact owned by exactly one user. Every query against
// leads must filter by UserID; the id alone is never enough.
type Lead struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Name         string          `gorm:"size:255;not null" json:"name"`
	Email        string          `gorm:"size:255;not null" json:"email"`
	PhoneNumber  string          `gorm:"size:64;not null"  json:"phoneNumber"`
	Status       LeadStatus      `gorm:"size:32;not null;default:New" json:"status"`
	DateOfCall   *datatypes.Date `json:"dateOfCall,omitempty"`
	LastCallDate *datatypes.Date `json:"lastCallDate,omitempty"`
	Notes        string          `gorm:"type:text" json:"notes,omitempty"`

	UserID uint `gorm:"index;not null" json:"userId"`
}
