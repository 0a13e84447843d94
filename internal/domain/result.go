package domain

import (
	"time"

	"github.com/google/uuid"
)

// Result is a tracked research finding pointing at a URL.
type Result struct {
	ID            uuid.UUID
	Title         string
	URL           string
	StatusID      *int64
	UserID        *uuid.UUID
	Metadata      map[string]any
	ScreenshotURL *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *Result) String() string { return "Result " + r.ID.String() }

// Audited attribute names of a Result.
const (
	ResultFieldTitle         = "title"
	ResultFieldURL           = "url"
	ResultFieldStatusID      = "status_id"
	ResultFieldUserID        = "user_id"
	ResultFieldMetadata      = "metadata"
	ResultFieldScreenshotURL = "screenshot_url"
)

// ResultAttributeOrder is the order in which dirty tracking reports changes.
var ResultAttributeOrder = []string{
	ResultFieldTitle,
	ResultFieldURL,
	ResultFieldStatusID,
	ResultFieldUserID,
	ResultFieldMetadata,
	ResultFieldScreenshotURL,
}

// Attributes returns the audited attribute values. Unset optional
// attributes and empty metadata are nil.
func (r *Result) Attributes() map[string]any {
	attrs := map[string]any{
		ResultFieldTitle:         nilIfEmpty(r.Title),
		ResultFieldURL:           nilIfEmpty(r.URL),
		ResultFieldStatusID:      nil,
		ResultFieldUserID:        nil,
		ResultFieldMetadata:      nil,
		ResultFieldScreenshotURL: nil,
	}
	if r.StatusID != nil {
		attrs[ResultFieldStatusID] = *r.StatusID
	}
	if r.UserID != nil {
		attrs[ResultFieldUserID] = *r.UserID
	}
	if len(r.Metadata) > 0 {
		attrs[ResultFieldMetadata] = r.Metadata
	}
	if r.ScreenshotURL != nil {
		attrs[ResultFieldScreenshotURL] = *r.ScreenshotURL
	}
	return attrs
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// ResultSchema describes how Result attributes are audited.
var ResultSchema = SchemaMetadata{
	EntityType: EntityTypeResult,
	References: []ReferenceField{
		{
			Field:  ResultFieldStatusID,
			Label:  "Status",
			Target: ReferenceTarget{Type: "Status", Table: "statuses", KeyColumn: "id", LabelColumn: "name"},
		},
		{
			Field:  ResultFieldUserID,
			Label:  "User",
			Target: ReferenceTarget{Type: "User", Table: "users", KeyColumn: "id", LabelColumn: "email"},
		},
	},
	Structured: []string{ResultFieldMetadata},
}

// Status is the workflow state of a result.
type Status struct {
	ID        int64
	Name      string
	IsDefault bool
}

func (s *Status) String() string { return s.Name }

// User is an actor that creates and edits results.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      *string
	CreatedAt time.Time
}

func (u *User) String() string { return u.Email }
