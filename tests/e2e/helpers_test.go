//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/result-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/result-tracker/internal/adapter/postgres/event"
	"github.com/heartmarshall/result-tracker/internal/adapter/postgres/reference"
	resultrepo "github.com/heartmarshall/result-tracker/internal/adapter/postgres/result"
	"github.com/heartmarshall/result-tracker/internal/adapter/postgres/status"
	"github.com/heartmarshall/result-tracker/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/result-tracker/internal/adapter/provider/screenshot"
	"github.com/heartmarshall/result-tracker/internal/audit"
	authpkg "github.com/heartmarshall/result-tracker/internal/auth"
	"github.com/heartmarshall/result-tracker/internal/config"
	"github.com/heartmarshall/result-tracker/internal/domain"
	resultsvc "github.com/heartmarshall/result-tracker/internal/service/result"
	"github.com/heartmarshall/result-tracker/internal/transport/middleware"
	"github.com/heartmarshall/result-tracker/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool

	jwt         *authpkg.JWTManager
	results     *resultsvc.Service
	screenshots *screenshotRecorder
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// screenshotRecorder stands in for the remote screenshot service.
type screenshotRecorder struct {
	mu       sync.Mutex
	requests []map[string]string
	tokens   []string
}

func (s *screenshotRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	s.requests = append(s.requests, body)
	s.tokens = append(s.tokens, r.Header.Get("Token"))
	s.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
}

func (s *screenshotRecorder) Requests() []map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]string(nil), s.requests...)
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	referenceRepo := reference.New(pool)
	statusRepo := status.New(pool)
	resultRepo := resultrepo.New(pool)
	eventRepo := event.New(pool)

	// 4. Audit engine.
	classifier, err := audit.NewClassifier(domain.ResultSchema)
	require.NoError(t, err)
	builder := audit.NewBuilder(logger, classifier, audit.NewResolver(referenceRepo))

	// 5. Fake screenshot service. The callback base URL is filled in once
	// the API server is listening.
	recorder := &screenshotRecorder{}
	shotSrv := httptest.NewServer(recorder)
	t.Cleanup(shotSrv.Close)

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	shotCfg := config.ScreenshotConfig{
		Endpoint:        shotSrv.URL,
		AccessToken:     "shot-token",
		Timeout:         5 * time.Second,
		CallbackBaseURL: srv.URL,
	}

	// 6. Services.
	results := resultsvc.NewService(
		logger, resultRepo, statusRepo, eventRepo, builder,
		screenshot.New(shotCfg, logger), txm, shotCfg,
	)
	t.Cleanup(results.Wait)

	// 7. JWT manager with a test secret (>= 32 chars).
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// 8. Router and middleware chain.
	rateLimiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rateLimiter.Stop)

	router := rest.NewRouter(
		rest.NewResultHandler(results, logger),
		rest.NewHealthHandler(pool, "test-version", true),
		rateLimiter.Limit(100),
	)
	mux.Handle("/", middleware.Chain(
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		}),
		middleware.Recovery(logger),
		middleware.Auth(jwtMgr, logger),
		middleware.Logger(logger),
	)(router))

	return &testServer{
		URL:         srv.URL,
		Client:      srv.Client(),
		Pool:        pool,
		jwt:         jwtMgr,
		results:     results,
		screenshots: recorder,
	}
}

// ---------------------------------------------------------------------------
// do sends a JSON request and returns status + raw body.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do plus decoding of the response into out.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string, out any) int {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return status
}

// ---------------------------------------------------------------------------
// createTestUserWithID inserts a user directly into the DB and returns a
// valid JWT access token together with the user's UUID.
// ---------------------------------------------------------------------------

func createTestUserWithID(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	email := fmt.Sprintf("test-%s@example.com", userID.String()[:8])

	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`,
		userID, email, "Test User", time.Now(),
	)
	require.NoError(t, err, "insert test user")

	tok, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err, "generate token")

	return tok, userID
}

// userEmail reads the seeded email of a user.
func userEmail(t *testing.T, ts *testServer, id uuid.UUID) string {
	t.Helper()

	var email string
	err := ts.Pool.QueryRow(context.Background(), `SELECT email FROM users WHERE id = $1`, id).Scan(&email)
	require.NoError(t, err)
	return email
}

// statusID looks up a seeded status by name.
func statusID(t *testing.T, ts *testServer, name string) int64 {
	t.Helper()

	var id int64
	err := ts.Pool.QueryRow(context.Background(), `SELECT id FROM statuses WHERE name = $1`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

// ---------------------------------------------------------------------------
// Response shapes.
// ---------------------------------------------------------------------------

type resultJSON struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	URL           string         `json:"url"`
	StatusID      *int64         `json:"statusId"`
	UserID        *string        `json:"userId"`
	Metadata      map[string]any `json:"metadata"`
	ScreenshotURL *string        `json:"screenshotUrl"`
}

type changeJSON struct {
	Field       string  `json:"field"`
	OldValue    *string `json:"oldValue"`
	NewValue    *string `json:"newValue"`
	OldValueKey *string `json:"oldValueKey"`
	NewValueKey *string `json:"newValueKey"`
	ValueClass  *string `json:"valueClass"`
}

type eventJSON struct {
	ID         string       `json:"id"`
	EntityType string       `json:"entityType"`
	EntityID   string       `json:"entityId"`
	Action     string       `json:"action"`
	UserID     *string      `json:"userId"`
	Changes    []changeJSON `json:"changes"`
}

func changeByField(t *testing.T, e eventJSON, field string) changeJSON {
	t.Helper()
	for _, c := range e.Changes {
		if c.Field == field {
			return c
		}
	}
	t.Fatalf("no %q change in event %+v", field, e)
	return changeJSON{}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
