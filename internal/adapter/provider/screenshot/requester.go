// Package screenshot asks a remote screenshot service to capture a page and
// post the resulting image URL back to a callback.
package screenshot

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/heartmarshall/result-tracker/internal/config"
)

// maxAttempts is the total number of attempts, the first one included.
const maxAttempts = 3

// StatusError is returned when the service answers with anything other than
// 200 or 201.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("screenshot: unexpected status %d", e.StatusCode)
}

type requestBody struct {
	URL      string `json:"url"`
	Callback string `json:"callback"`
}

// Requester sends fire-and-forget screenshot requests.
type Requester struct {
	endpoint    string
	accessToken string
	retryDelay  retry.Option
	httpClient  *http.Client
	log         *slog.Logger
}

// New creates a Requester from cfg. A Requester with an empty endpoint logs
// and drops every request.
func New(cfg config.ScreenshotConfig, logger *slog.Logger) *Requester {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via config
	}

	return &Requester{
		endpoint:    cfg.Endpoint,
		accessToken: cfg.AccessToken,
		retryDelay:  retry.Delay(cfg.RetryDelay),
		httpClient:  &http.Client{Timeout: cfg.Timeout, Transport: transport},
		log:         logger.With("adapter", "screenshot"),
	}
}

// RequestScreenshot asks the service to capture targetURL and post the result
// to callbackURL. Failures are logged, never returned; recoverable failures
// are retried up to three attempts in total.
func (r *Requester) RequestScreenshot(ctx context.Context, targetURL, callbackURL string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.ErrorContext(ctx, "screenshot request panicked",
				slog.String("url", targetURL),
				slog.Any("panic", rec),
			)
		}
	}()

	if r.endpoint == "" {
		r.log.ErrorContext(ctx, "screenshot endpoint not configured", slog.String("url", targetURL))
		return
	}

	body, err := json.Marshal(requestBody{URL: targetURL, Callback: callbackURL})
	if err != nil {
		r.log.ErrorContext(ctx, "screenshot encode request", slog.String("url", targetURL), slog.String("error", err.Error()))
		return
	}

	attempts := 0
	err = retry.Do(
		func() error {
			attempts++
			return r.send(ctx, body)
		},
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		r.retryDelay,
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRecoverable),
		retry.OnRetry(func(n uint, err error) {
			r.log.WarnContext(ctx, "screenshot attempt failed",
				slog.String("url", targetURL),
				slog.Uint64("attempt", uint64(n+1)),
				slog.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		r.log.ErrorContext(ctx, "screenshot request gave up",
			slog.String("url", targetURL),
			slog.Int("attempts", attempts),
			slog.String("error", err.Error()),
		)
		return
	}

	r.log.InfoContext(ctx, "screenshot requested",
		slog.String("url", targetURL),
		slog.Int("attempts", attempts),
	)
}

func (r *Requester) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("screenshot: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.accessToken != "" {
		req.Header.Set("Token", r.accessToken)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("screenshot: send: %w", err)
	}
	// Drain so the connection can be reused by the next attempt.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

// isRecoverable reports whether a failed attempt should be retried: any
// unexpected status and connections closed before a full response.
func isRecoverable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
