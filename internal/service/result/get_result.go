package result

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/result-tracker/internal/domain"
)

// GetResult returns a result by ID.
func (s *Service) GetResult(ctx context.Context, id uuid.UUID) (domain.Result, error) {
	res, err := s.results.GetByID(ctx, id)
	if err != nil {
		return domain.Result{}, fmt.Errorf("get result: %w", err)
	}
	return res, nil
}

// ListEvents returns the audit trail of a result, newest first.
func (s *Service) ListEvents(ctx context.Context, id uuid.UUID) ([]domain.Event, error) {
	if _, err := s.results.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}

	events, err := s.events.ListByEntity(ctx, domain.EntityTypeResult, id)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
