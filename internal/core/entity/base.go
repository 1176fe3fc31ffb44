package entity

import (
	"context"
	"time"

	"accountease/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Record contains common fields for all owner-scoped documents.
// Every collection is keyed by the owning user's identifier; there is no
// cross-owner visibility anywhere in the system.
type Record struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// OwnerID scopes the record to the authenticated user
	OwnerID string `db:"owner_id" json:"ownerId"`

	// Audit timestamps
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewRecord creates a new Record with generated ID and timestamps.
func NewRecord(ownerID string) Record {
	now := time.Now().UTC()
	return Record{
		ID:        id.New(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the UpdatedAt timestamp.
func (r *Record) Touch() {
	r.UpdatedAt = time.Now().UTC()
}

// SetUpdatedAt updates the updated_at timestamp (used by repository).
func (r *Record) SetUpdatedAt(t time.Time) {
	r.UpdatedAt = t
}
