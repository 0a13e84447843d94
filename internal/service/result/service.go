package result

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/result-tracker/internal/config"
	"github.com/heartmarshall/result-tracker/internal/domain"
)

type resultRepo interface {
	Create(ctx context.Context, res domain.Result) (domain.Result, error)
	Update(ctx context.Context, res domain.Result) (domain.Result, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Result, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Result, error)
}

type statusRepo interface {
	GetDefault(ctx context.Context) (domain.Status, error)
}

type eventRepo interface {
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
	DeleteByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (int64, error)
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Event, error)
}

type eventBuilder interface {
	Build(ctx context.Context, entityType domain.EntityType, action domain.EventAction, actorID *uuid.UUID, changes *domain.ChangeSet) (domain.Event, error)
}

type screenshotRequester interface {
	RequestScreenshot(ctx context.Context, targetURL, callbackURL string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages results and records an audit event for every save.
type Service struct {
	results     resultRepo
	statuses    statusRepo
	events      eventRepo
	builder     eventBuilder
	screenshots screenshotRequester
	tx          txManager
	cfg         config.ScreenshotConfig
	log         *slog.Logger

	inflight sync.WaitGroup
}

// NewService creates a new result service.
func NewService(
	log *slog.Logger,
	results resultRepo,
	statuses statusRepo,
	events eventRepo,
	builder eventBuilder,
	screenshots screenshotRequester,
	tx txManager,
	cfg config.ScreenshotConfig,
) *Service {
	return &Service{
		results:     results,
		statuses:    statuses,
		events:      events,
		builder:     builder,
		screenshots: screenshots,
		tx:          tx,
		cfg:         cfg,
		log:         log.With("service", "result"),
	}
}

// Wait blocks until every screenshot request started by the service has
// finished.
func (s *Service) Wait() {
	s.inflight.Wait()
}

// requestScreenshot asks for a screenshot of res in the background. The
// request outlives ctx cancellation but keeps its values for logging.
func (s *Service) requestScreenshot(ctx context.Context, res domain.Result) {
	callback := s.cfg.CallbackURL(res.ID.String())
	if callback == "" {
		s.log.WarnContext(ctx, "screenshot callback base url not configured",
			slog.String("result_id", res.ID.String()),
		)
	}

	bg := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.screenshots.RequestScreenshot(bg, res.URL, callback)
	}()
}

// recordEvent builds the audit event for changes and stores it. It must run
// inside the transaction that saved the result.
func (s *Service) recordEvent(ctx context.Context, action domain.EventAction, actor *uuid.UUID, resultID uuid.UUID, changes *domain.ChangeSet) (domain.Event, error) {
	event, err := s.builder.Build(ctx, domain.EntityTypeResult, action, actor, changes)
	if err != nil {
		return domain.Event{}, err
	}
	event.EntityID = resultID

	return s.events.Create(ctx, event)
}
