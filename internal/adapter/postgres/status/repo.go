// Package status implements read access to result statuses.
package status

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/result-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/result-tracker/internal/domain"
)

var columns = []string{"id", "name", "is_default"}

// Repo provides status lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new status repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetDefault returns the status assigned to new results.
func (r *Repo) GetDefault(ctx context.Context) (domain.Status, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("statuses").
		Where(sq.Eq{"is_default": true}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.Status{}, fmt.Errorf("build default status query: %w", err)
	}

	s, err := scanStatus(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Status{}, postgres.MapError(err, "status", "default")
	}
	return s, nil
}

// GetByID returns a status by id.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Status, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("statuses").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Status{}, fmt.Errorf("build status query: %w", err)
	}

	s, err := scanStatus(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Status{}, postgres.MapError(err, "status", id)
	}
	return s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStatus(row scanner) (domain.Status, error) {
	var s domain.Status
	if err := row.Scan(&s.ID, &s.Name, &s.IsDefault); err != nil {
		return domain.Status{}, err
	}
	return s, nil
}
