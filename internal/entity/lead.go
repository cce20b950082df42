package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lead statuses. No other value is ever persisted.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusLost      = "lost"
)

// DefaultSource marks leads captured through the web form.
const DefaultSource = "web"

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrEmailTaken   = errors.New("a lead with this email already exists")
)

type Lead struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Status    string    `json:"status" bson:"status"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Source    string    `json:"source" bson:"source"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// NewLead builds a lead with server-assigned ID, timestamps and defaults.
// Inputs are expected to be normalized already (trimmed name, lowercase
// email, digits-only phone).
func NewLead(name, email, phone, status, notes string) *Lead {
	if status == "" {
		status = StatusNew
	}

	now := Now()

	return &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Status:    status,
		Notes:     notes,
		Source:    DefaultSource,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusContacted, StatusQualified, StatusLost:
		return true
	}
	return false
}

// Now returns the current UTC time truncated to millisecond precision,
// the finest resolution BSON dates round-trip. Both store implementations
// stamp records with it so their responses stay identical.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
