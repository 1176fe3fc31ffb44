// Package audit defines the mutation audit-trail contract.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"accountease/internal/core/id"
)

// Action represents the type of audited operation.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Entry is one recorded mutation, with the change payload already
// decoded regardless of how the store held it.
type Entry struct {
	ID         id.ID           `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   id.ID           `json:"entityId"`
	Action     Action          `json:"action"`
	UserEmail  string          `json:"userEmail"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Recorder persists audit entries. Implementations must be best-effort:
// services log failures but never fail the business operation over them.
type Recorder interface {
	Record(ctx context.Context, entityType string, entityID id.ID, action Action, changes any) error
}

// Log is a Recorder whose entries can be read back per entity.
type Log interface {
	Recorder
	EntityHistory(ctx context.Context, ownerID, entityType string, entityID id.ID, limit int) ([]Entry, error)
}

// Nop is a Log that discards everything. Useful in tests.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(ctx context.Context, entityType string, entityID id.ID, action Action, changes any) error {
	return nil
}

// EntityHistory implements Log.
func (Nop) EntityHistory(ctx context.Context, ownerID, entityType string, entityID id.ID, limit int) ([]Entry, error) {
	return nil, nil
}
