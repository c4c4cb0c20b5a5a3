package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bizform/internal/wizard"
	"bizform/pkg/platform/httputil"
	"bizform/pkg/requestcontext"
)

// Service defines the interface for wizard run operations.
type Service interface {
	StartRun(ctx context.Context, mode wizard.Mode) (*wizard.Snapshot, error)
	GetRun(ctx context.Context, runID string) (*wizard.Snapshot, error)
	SubmitAnswer(ctx context.Context, runID string, stepIndex int, optionID string) (*wizard.Snapshot, error)
	GoBack(ctx context.Context, runID string) (*wizard.Snapshot, error)
	ResetRun(ctx context.Context, runID string) (*wizard.Snapshot, error)
}

// Handler wires questionnaire endpoints to the wizard service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a wizard handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts questionnaire endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/wizard/start", h.HandleStart)
	r.Get("/api/wizard/{runID}", h.HandleGet)
	r.Post("/api/wizard/{runID}/answer", h.HandleAnswer)
	r.Post("/api/wizard/{runID}/back", h.HandleBack)
	r.Post("/api/wizard/{runID}/reset", h.HandleReset)
}

// HandleStart handles POST /api/wizard/start requests.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[StartRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	snap, err := h.service.StartRun(ctx, req.ParsedMode())
	if err != nil {
		h.logger.ErrorContext(ctx, "wizard start failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, FromSnapshot(snap))
}

// HandleGet handles GET /api/wizard/{runID} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap, err := h.service.GetRun(ctx, chi.URLParam(r, "runID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromSnapshot(snap))
}

// HandleAnswer handles POST /api/wizard/{runID}/answer requests.
func (h *Handler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	runID := chi.URLParam(r, "runID")

	req, ok := httputil.DecodeAndPrepare[AnswerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	snap, err := h.service.SubmitAnswer(ctx, runID, *req.StepIndex, req.OptionID)
	if err != nil {
		h.logger.InfoContext(ctx, "wizard answer rejected",
			"request_id", requestID,
			"run_id", runID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromSnapshot(snap))
}

// HandleBack handles POST /api/wizard/{runID}/back requests.
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	runID := chi.URLParam(r, "runID")

	snap, err := h.service.GoBack(ctx, runID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromSnapshot(snap))
}

// HandleReset handles POST /api/wizard/{runID}/reset requests.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	runID := chi.URLParam(r, "runID")

	snap, err := h.service.ResetRun(ctx, runID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromSnapshot(snap))
}
