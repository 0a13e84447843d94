package result

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/result-tracker/internal/domain"
)

const (
	maxTitleLen = 255
	maxURLLen   = 2048
)

// CreateResultInput holds the parameters for creating a result.
type CreateResultInput struct {
	Title    string
	URL      string
	StatusID *int64 // nil = default status
	Metadata map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateResultInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	errs = validateURL(errs, "url", i.URL)
	errs = validateStatusID(errs, i.StatusID)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateResultInput holds the parameters for a partial update. Nil fields
// are left unchanged; Metadata replaces the stored map wholesale, and an
// empty non-nil map clears it.
type UpdateResultInput struct {
	ResultID    uuid.UUID
	Title       *string
	URL         *string
	StatusID    *int64
	ClearStatus bool
	OwnerID     *uuid.UUID
	Metadata    map[string]any
}

func (i UpdateResultInput) empty() bool {
	return i.Title == nil && i.URL == nil && i.StatusID == nil && !i.ClearStatus &&
		i.OwnerID == nil && i.Metadata == nil
}

// Validate checks all fields and collects all errors.
func (i UpdateResultInput) Validate() error {
	var errs []domain.FieldError

	if i.ResultID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "result_id", Message: "required"})
	}
	if i.empty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.URL != nil {
		errs = validateURL(errs, "url", *i.URL)
	}
	if i.StatusID != nil && i.ClearStatus {
		errs = append(errs, domain.FieldError{Field: "status_id", Message: "cannot set and clear at the same time"})
	}
	errs = validateStatusID(errs, i.StatusID)
	if i.OwnerID != nil && *i.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AttachScreenshotInput is the payload the screenshot service posts back.
type AttachScreenshotInput struct {
	ResultID      uuid.UUID
	ScreenshotURL string
}

// Validate checks all fields and collects all errors.
func (i AttachScreenshotInput) Validate() error {
	var errs []domain.FieldError

	if i.ResultID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "result_id", Message: "required"})
	}
	errs = validateURL(errs, "screenshot_url", i.ScreenshotURL)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	return errs
}

func validateURL(errs []domain.FieldError, field, raw string) []domain.FieldError {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(raw) > maxURLLen {
		return append(errs, domain.FieldError{Field: field, Message: "max 2048 characters"})
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return append(errs, domain.FieldError{Field: field, Message: "must be an absolute http or https url"})
	}
	return errs
}

func validateStatusID(errs []domain.FieldError, id *int64) []domain.FieldError {
	if id != nil && *id <= 0 {
		return append(errs, domain.FieldError{Field: "status_id", Message: "must be positive"})
	}
	return errs
}
