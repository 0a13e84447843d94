package result

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/result-tracker/internal/domain"
	"github.com/heartmarshall/result-tracker/pkg/ctxutil"
)

// CreateResult stores a new result owned by the acting user and records a
// Created event in the same transaction. A screenshot of the URL is
// requested once the transaction has committed.
func (s *Service) CreateResult(ctx context.Context, input CreateResultInput) (domain.Result, error) {
	if err := input.Validate(); err != nil {
		return domain.Result{}, err
	}

	actor := ctxutil.ActorFromCtx(ctx)
	now := time.Now().UTC()
	res := domain.Result{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(input.Title),
		URL:       strings.TrimSpace(input.URL),
		StatusID:  input.StatusID,
		UserID:    actor,
		Metadata:  input.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created domain.Result
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if res.StatusID == nil {
			status, err := s.statuses.GetDefault(txCtx)
			switch {
			case err == nil:
				res.StatusID = &status.ID
			case errors.Is(err, domain.ErrNotFound):
				s.log.WarnContext(ctx, "no default status, creating result without one")
			default:
				return fmt.Errorf("get default status: %w", err)
			}
		}

		var err error
		created, err = s.results.Create(txCtx, res)
		if err != nil {
			return fmt.Errorf("create result: %w", err)
		}

		if _, err := s.recordEvent(txCtx, domain.EventActionCreated, actor, created.ID, dirtyChanges(domain.Result{}, created)); err != nil {
			return fmt.Errorf("record created event: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Result{}, err
	}

	s.log.InfoContext(ctx, "result created",
		slog.String("result_id", created.ID.String()),
	)

	s.requestScreenshot(ctx, created)

	return created, nil
}
