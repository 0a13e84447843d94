// Package event implements the audit Event repository using PostgreSQL.
// Events are append-only: they are written once and only removed together
// with the entity they describe.
package event

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/result-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/result-tracker/internal/domain"
)

var (
	eventColumns  = []string{"id", "entity_type", "entity_id", "action", "user_id", "created_at"}
	changeColumns = []string{"event_id", "position", "field", "old_value", "new_value", "old_value_key", "new_value_key", "value_class"}
)

// changeBatchSize caps rows per event_changes INSERT. Each row binds
// len(changeColumns) parameters and Postgres allows at most 65535 per
// statement.
const changeBatchSize = 1000

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db        postgres.Querier
	batchSize int
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, batchSize: changeBatchSize}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the event row and all of its changes. A zero ID or
// CreatedAt is filled in. Call it inside RunInTx so the event commits
// together with the entity write.
func (r *Repo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Insert("events").
		Columns(eventColumns...).
		Values(e.ID, string(e.EntityType), e.EntityID, string(e.Action), e.UserID, e.CreatedAt).
		ToSql()
	if err != nil {
		return domain.Event{}, fmt.Errorf("build insert event: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return domain.Event{}, postgres.MapError(err, "event", e.ID)
	}

	for start := 0; start < len(e.Changes); start += r.batchSize {
		end := min(start+r.batchSize, len(e.Changes))

		ins := postgres.Builder.Insert("event_changes").Columns(changeColumns...)
		for i := start; i < end; i++ {
			c := e.Changes[i]
			ins = ins.Values(e.ID, i, c.Field, c.OldValue, c.NewValue, c.OldValueKey, c.NewValueKey, c.ValueClass)
		}
		query, args, err := ins.ToSql()
		if err != nil {
			return domain.Event{}, fmt.Errorf("build insert event changes: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return domain.Event{}, postgres.MapError(err, "event", e.ID)
		}
	}

	return e, nil
}

// DeleteByEntity removes every event of an entity. Changes go with them via
// ON DELETE CASCADE. Returns the number of deleted events.
func (r *Repo) DeleteByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (int64, error) {
	query, args, err := postgres.Builder.
		Delete("events").
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete events: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "events of "+entityType.String(), entityID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the events of an entity, newest first, each with its
// changes in recorded order. Changes of all events are loaded with a single
// query.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Select(eventColumns...).
		From("events").
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select events: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]domain.Event, 0)
	index := make(map[uuid.UUID]int)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			e              domain.Event
			entity, action string
		)
		if err := rows.Scan(&e.ID, &entity, &e.EntityID, &action, &e.UserID, &e.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.EntityType = domain.EntityType(entity)
		e.Action = domain.EventAction(action)
		e.Changes = []domain.EventChange{}

		index[e.ID] = len(events)
		ids = append(ids, e.ID)
		events = append(events, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	if len(ids) == 0 {
		return events, nil
	}

	query, args, err = postgres.Builder.
		Select(changeColumns...).
		From("event_changes").
		Where(sq.Eq{"event_id": ids}).
		OrderBy("event_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select event changes: %w", err)
	}

	changeRows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list event changes: %w", err)
	}
	defer changeRows.Close()

	for changeRows.Next() {
		var (
			eventID  uuid.UUID
			position int
			c        domain.EventChange
		)
		if err := changeRows.Scan(&eventID, &position, &c.Field, &c.OldValue, &c.NewValue,
			&c.OldValueKey, &c.NewValueKey, &c.ValueClass); err != nil {
			return nil, fmt.Errorf("scan event change: %w", err)
		}
		i, ok := index[eventID]
		if !ok {
			continue
		}
		events[i].Changes = append(events[i].Changes, c)
	}
	if err := changeRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event changes: %w", err)
	}

	return events, nil
}
