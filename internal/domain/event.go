package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event records one create or update of an audited entity.
type Event struct {
	ID         uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     EventAction
	UserID     *uuid.UUID // acting user, nil for system changes
	Changes    []EventChange
	CreatedAt  time.Time
}

// EventChange is one field-level line item of an Event.
type EventChange struct {
	Field    string
	OldValue *string
	NewValue *string

	// Set for reference fields only.
	OldValueKey *string
	NewValueKey *string
	ValueClass  *string
}
