package result

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/result-tracker/internal/domain"
	"github.com/heartmarshall/result-tracker/pkg/ctxutil"
)

// UpdateResult applies a partial update and records an Updated event. The
// event is written on every save, even when no audited attribute changed.
func (s *Service) UpdateResult(ctx context.Context, input UpdateResultInput) (domain.Result, error) {
	if err := input.Validate(); err != nil {
		return domain.Result{}, err
	}

	updated, err := s.save(ctx, input.ResultID, func(res *domain.Result) {
		if input.Title != nil {
			res.Title = strings.TrimSpace(*input.Title)
		}
		if input.URL != nil {
			res.URL = strings.TrimSpace(*input.URL)
		}
		switch {
		case input.ClearStatus:
			res.StatusID = nil
		case input.StatusID != nil:
			res.StatusID = input.StatusID
		}
		if input.OwnerID != nil {
			res.UserID = input.OwnerID
		}
		if input.Metadata != nil {
			res.Metadata = input.Metadata
		}
	})
	if err != nil {
		return domain.Result{}, err
	}

	s.log.InfoContext(ctx, "result updated", slog.String("result_id", updated.ID.String()))

	return updated, nil
}

// AttachScreenshot stores the screenshot URL posted back by the screenshot
// service. It goes through the same audited save as UpdateResult.
func (s *Service) AttachScreenshot(ctx context.Context, input AttachScreenshotInput) (domain.Result, error) {
	if err := input.Validate(); err != nil {
		return domain.Result{}, err
	}

	screenshotURL := strings.TrimSpace(input.ScreenshotURL)
	updated, err := s.save(ctx, input.ResultID, func(res *domain.Result) {
		res.ScreenshotURL = &screenshotURL
	})
	if err != nil {
		return domain.Result{}, err
	}

	s.log.InfoContext(ctx, "screenshot attached", slog.String("result_id", updated.ID.String()))

	return updated, nil
}

// save locks the result, applies mutate, writes it back and records the
// Updated event, all in one transaction.
func (s *Service) save(ctx context.Context, id uuid.UUID, mutate func(*domain.Result)) (domain.Result, error) {
	actor := ctxutil.ActorFromCtx(ctx)

	var saved domain.Result
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.results.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get result: %w", err)
		}

		next := old
		mutate(&next)
		next.UpdatedAt = time.Now().UTC()

		saved, err = s.results.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update result: %w", err)
		}

		event, err := s.recordEvent(txCtx, domain.EventActionUpdated, actor, saved.ID, dirtyChanges(old, saved))
		if err != nil {
			return fmt.Errorf("record updated event: %w", err)
		}

		s.log.DebugContext(ctx, "result saved",
			slog.String("result_id", saved.ID.String()),
			slog.Int("changes", len(event.Changes)),
		)
		return nil
	})
	if err != nil {
		return domain.Result{}, err
	}

	return saved, nil
}
