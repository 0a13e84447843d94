package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/result-tracker/internal/domain"
	resultsvc "github.com/heartmarshall/result-tracker/internal/service/result"
)

const maxBodyBytes = 1 << 20

// resultService defines the minimal interface needed by ResultHandler.
type resultService interface {
	CreateResult(ctx context.Context, input resultsvc.CreateResultInput) (domain.Result, error)
	UpdateResult(ctx context.Context, input resultsvc.UpdateResultInput) (domain.Result, error)
	AttachScreenshot(ctx context.Context, input resultsvc.AttachScreenshotInput) (domain.Result, error)
	DeleteResult(ctx context.Context, id uuid.UUID) error
	GetResult(ctx context.Context, id uuid.UUID) (domain.Result, error)
	ListEvents(ctx context.Context, id uuid.UUID) ([]domain.Event, error)
}

// ResultHandler serves the results REST endpoints.
type ResultHandler struct {
	svc resultService
	log *slog.Logger
}

// NewResultHandler creates a ResultHandler.
func NewResultHandler(svc resultService, logger *slog.Logger) *ResultHandler {
	return &ResultHandler{svc: svc, log: logger.With("handler", "result")}
}

type createResultRequest struct {
	Title    string         `json:"title"`
	URL      string         `json:"url"`
	StatusID *int64         `json:"statusId"`
	Metadata map[string]any `json:"metadata"`
}

type updateResultRequest struct {
	Title       *string        `json:"title"`
	URL         *string        `json:"url"`
	StatusID    *int64         `json:"statusId"`
	ClearStatus bool           `json:"clearStatus"`
	UserID      *string        `json:"userId"`
	Metadata    map[string]any `json:"metadata"`
}

type screenshotCallbackRequest struct {
	URL string `json:"url"`
}

type resultResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	URL           string         `json:"url"`
	StatusID      *int64         `json:"statusId"`
	UserID        *string        `json:"userId"`
	Metadata      map[string]any `json:"metadata"`
	ScreenshotURL *string        `json:"screenshotUrl"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type eventResponse struct {
	ID         string           `json:"id"`
	EntityType string           `json:"entityType"`
	EntityID   string           `json:"entityId"`
	Action     string           `json:"action"`
	UserID     *string          `json:"userId"`
	CreatedAt  time.Time        `json:"createdAt"`
	Changes    []changeResponse `json:"changes"`
}

type changeResponse struct {
	Field       string  `json:"field"`
	OldValue    *string `json:"oldValue"`
	NewValue    *string `json:"newValue"`
	OldValueKey *string `json:"oldValueKey,omitempty"`
	NewValueKey *string `json:"newValueKey,omitempty"`
	ValueClass  *string `json:"valueClass,omitempty"`
}

// Create handles POST /results.
func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResultRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.CreateResult(r.Context(), resultsvc.CreateResultInput{
		Title:    req.Title,
		URL:      req.URL,
		StatusID: req.StatusID,
		Metadata: req.Metadata,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResultResponse(res))
}

// Get handles GET /results/{id}.
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.GetResult(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(res))
}

// Update handles PATCH /results/{id}.
func (h *ResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateResultRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := resultsvc.UpdateResultInput{
		ResultID:    id,
		Title:       req.Title,
		URL:         req.URL,
		StatusID:    req.StatusID,
		ClearStatus: req.ClearStatus,
		Metadata:    req.Metadata,
	}
	if req.UserID != nil {
		owner, err := uuid.Parse(*req.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid userId")
			return
		}
		input.OwnerID = &owner
	}

	res, err := h.svc.UpdateResult(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(res))
}

// Delete handles DELETE /results/{id}.
func (h *ResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteResult(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Events handles GET /results/{id}/events.
func (h *ResultHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	events, err := h.svc.ListEvents(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ScreenshotCallback handles POST /results/{id}/screenshot, called by the
// screenshot service once the capture is stored.
func (h *ResultHandler) ScreenshotCallback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req screenshotCallbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.AttachScreenshot(r.Context(), resultsvc.AttachScreenshotInput{
		ResultID:      id,
		ScreenshotURL: req.URL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(res))
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid result id")
		return uuid.Nil, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toResultResponse(res domain.Result) resultResponse {
	metadata := res.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return resultResponse{
		ID:            res.ID.String(),
		Title:         res.Title,
		URL:           res.URL,
		StatusID:      res.StatusID,
		UserID:        uuidString(res.UserID),
		Metadata:      metadata,
		ScreenshotURL: res.ScreenshotURL,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
}

func toEventResponse(e domain.Event) eventResponse {
	changes := make([]changeResponse, 0, len(e.Changes))
	for _, c := range e.Changes {
		changes = append(changes, changeResponse(c))
	}
	return eventResponse{
		ID:         e.ID.String(),
		EntityType: e.EntityType.String(),
		EntityID:   e.EntityID.String(),
		Action:     e.Action.String(),
		UserID:     uuidString(e.UserID),
		CreatedAt:  e.CreatedAt,
		Changes:    changes,
	}
}
