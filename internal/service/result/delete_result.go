package result

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/result-tracker/internal/domain"
)

// DeleteResult removes a result together with its audit trail.
func (s *Service) DeleteResult(ctx context.Context, id uuid.UUID) error {
	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = s.events.DeleteByEntity(txCtx, domain.EntityTypeResult, id)
		if err != nil {
			return fmt.Errorf("delete events: %w", err)
		}
		if err := s.results.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete result: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "result deleted",
		slog.String("result_id", id.String()),
		slog.Int64("events", removed),
	)
	return nil
}
