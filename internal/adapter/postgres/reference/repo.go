// Package reference implements the label store used by the audit resolver.
// Lookups run through the tx-in-context querier so they see the caller's
// uncommitted writes.
package reference

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/result-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/result-tracker/internal/domain"
)

// Repo resolves display labels of referenced rows.
type Repo struct {
	db postgres.Querier
}

// New creates a new reference label repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// LabelsByKeys returns label by key for the rows of target whose key is in
// keys. Keys are compared as text so integer and uuid keys share one code
// path. Keys without a row are absent from the result; a NULL label maps
// to "".
func (r *Repo) LabelsByKeys(ctx context.Context, target domain.ReferenceTarget, keys []string) (map[string]string, error) {
	// identifiers are interpolated below, so they must pass validation first
	if err := target.Validate(); err != nil {
		return nil, err
	}
	labels := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return labels, nil
	}

	keyExpr := target.KeyColumn + "::text"
	query, args, err := postgres.Builder.
		Select(keyExpr, "COALESCE("+target.LabelColumn+"::text, '')").
		From(target.Table).
		Where(sq.Eq{keyExpr: keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s label query: %w", target.Table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s labels: %w", target.Table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, label string
		if err := rows.Scan(&key, &label); err != nil {
			return nil, fmt.Errorf("scan %s label: %w", target.Table, err)
		}
		labels[key] = label
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s labels: %w", target.Table, err)
	}

	return labels, nil
}
