package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/result-tracker/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	name := "Test User " + suffix
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      &name,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.Name, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedStatus inserts a non-default status with a unique name.
func SeedStatus(t *testing.T, pool *pgxpool.Pool) domain.Status {
	t.Helper()

	s := domain.Status{Name: "Status " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO statuses (name) VALUES ($1) RETURNING id`, s.Name,
	).Scan(&s.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedStatus: %v", err)
	}
	return s
}

// SeedResult inserts a result owned by userID with the default status.
func SeedResult(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Result {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	res := domain.Result{
		ID:        uuid.New(),
		Title:     "Result " + uniqueSuffix(),
		URL:       "https://example.com/" + uniqueSuffix(),
		UserID:    &userID,
		Metadata:  map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	var statusID int64
	if err := pool.QueryRow(ctx, `SELECT id FROM statuses WHERE is_default`).Scan(&statusID); err != nil {
		t.Fatalf("testhelper: SeedResult default status: %v", err)
	}
	res.StatusID = &statusID

	_, err := pool.Exec(ctx,
		`INSERT INTO results (id, title, url, status_id, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID, res.Title, res.URL, res.StatusID, res.UserID, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedResult: %v", err)
	}

	return res
}
