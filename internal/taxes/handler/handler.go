package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bizform/internal/taxes"
	id "bizform/pkg/domain"
	"bizform/pkg/platform/httputil"
	"bizform/pkg/requestcontext"
)

// Service defines the interface for tax calculation operations.
type Service interface {
	CalculateNPD(ctx context.Context, monthlyIncome float64, clientType id.ClientType) (*taxes.NPDResult, error)
	CalculateUSN(ctx context.Context, yearlyIncome, yearlyExpenses float64) (*taxes.USNResult, error)
	RecommendForm(ctx context.Context, monthlyRevenue, monthlyExpenses float64, employees, partners int) (*taxes.FormRecommendation, error)
}

// Handler wires calculator endpoints to the taxes service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a taxes handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts calculator endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/calculate/npd", h.HandleCalculateNPD)
	r.Post("/api/calculate/usn", h.HandleCalculateUSN)
	r.Post("/api/simulate", h.HandleSimulate)
}

// HandleCalculateNPD handles POST /api/calculate/npd requests.
func (h *Handler) HandleCalculateNPD(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[NPDRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CalculateNPD(ctx, *req.MonthlyIncome, req.ParsedClientType())
	if err != nil {
		h.logger.ErrorContext(ctx, "npd calculation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromNPDResult(result))
}

// HandleCalculateUSN handles POST /api/calculate/usn requests.
func (h *Handler) HandleCalculateUSN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[USNRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CalculateUSN(ctx, *req.YearlyIncome, *req.YearlyExpenses)
	if err != nil {
		h.logger.ErrorContext(ctx, "usn calculation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromUSNResult(result))
}

// HandleSimulate handles POST /api/simulate requests.
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SimulateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.service.RecommendForm(ctx, *req.MonthlyRevenue, *req.MonthlyExpenses, *req.Employees, *req.Partners)
	if err != nil {
		h.logger.ErrorContext(ctx, "form simulation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "simulation completed",
		"request_id", requestID,
		"form", rec.Form,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromRecommendation(rec))
}
