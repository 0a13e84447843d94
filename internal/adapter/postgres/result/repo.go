// Package result implements the Result repository using PostgreSQL.
package result

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/result-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/result-tracker/internal/domain"
)

var columns = []string{
	"id", "title", "url", "status_id", "user_id",
	"metadata", "screenshot_url", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides result persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new result repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new result and returns the persisted row.
func (r *Repo) Create(ctx context.Context, res domain.Result) (domain.Result, error) {
	metadata, err := encodeMetadata(res.Metadata)
	if err != nil {
		return domain.Result{}, fmt.Errorf("result %s: %w", res.ID, err)
	}

	query, args, err := postgres.Builder.
		Insert("results").
		Columns(columns...).
		Values(res.ID, res.Title, res.URL, res.StatusID, res.UserID,
			metadata, res.ScreenshotURL, res.CreatedAt, res.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Result{}, fmt.Errorf("build insert result: %w", err)
	}

	got, err := scanResult(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Result{}, postgres.MapError(err, "result", res.ID)
	}
	return got, nil
}

// Update overwrites the mutable columns of a result.
func (r *Repo) Update(ctx context.Context, res domain.Result) (domain.Result, error) {
	metadata, err := encodeMetadata(res.Metadata)
	if err != nil {
		return domain.Result{}, fmt.Errorf("result %s: %w", res.ID, err)
	}

	query, args, err := postgres.Builder.
		Update("results").
		SetMap(map[string]any{
			"title":          res.Title,
			"url":            res.URL,
			"status_id":      res.StatusID,
			"user_id":        res.UserID,
			"metadata":       metadata,
			"screenshot_url": res.ScreenshotURL,
			"updated_at":     res.UpdatedAt,
		}).
		Where(sq.Eq{"id": res.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Result{}, fmt.Errorf("build update result: %w", err)
	}

	got, err := scanResult(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Result{}, postgres.MapError(err, "result", res.ID)
	}
	return got, nil
}

// Delete removes a result. Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("results").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete result: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "result", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("result %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a result by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Result, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns a result and locks its row until the surrounding
// transaction ends. Must be called inside RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Result, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (domain.Result, error) {
	b := postgres.Builder.
		Select(columns...).
		From("results").
		Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return domain.Result{}, fmt.Errorf("build select result: %w", err)
	}

	got, err := scanResult(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Result{}, postgres.MapError(err, "result", id)
	}
	return got, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (domain.Result, error) {
	var (
		res      domain.Result
		metadata []byte
	)
	err := row.Scan(
		&res.ID, &res.Title, &res.URL, &res.StatusID, &res.UserID,
		&metadata, &res.ScreenshotURL, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return domain.Result{}, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &res.Metadata); err != nil {
			return domain.Result{}, fmt.Errorf("result %s unmarshal metadata: %w", res.ID, err)
		}
	}
	return res, nil
}

// encodeMetadata renders metadata for the jsonb column; nil becomes {}.
func encodeMetadata(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return b, nil
}
