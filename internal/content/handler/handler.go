package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bizform/internal/content"
	"bizform/pkg/platform/httputil"
	"bizform/pkg/requestcontext"
)

// Service defines the interface for knowledge-base reads.
type Service interface {
	List(ctx context.Context, kind content.Kind) ([]content.Item, error)
	Get(ctx context.Context, kind content.Kind, slug string) (*content.Item, error)
	GetOverview(ctx context.Context) (*content.Overview, error)
}

// Handler wires knowledge-base endpoints to the content service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a content handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts knowledge-base endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/content", h.HandleOverview)
	r.Get("/api/content/{kind}", h.HandleList)
	r.Get("/api/content/{kind}/{slug}", h.HandleGet)
}

// HandleOverview handles GET /api/content requests.
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	overview, err := h.service.GetOverview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "content overview failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromOverview(overview))
}

// HandleList handles GET /api/content/{kind} requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := content.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	items, err := h.service.List(ctx, kind)
	if err != nil {
		h.logger.ErrorContext(ctx, "content list failed",
			"request_id", requestcontext.RequestID(ctx),
			"kind", kind,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromItems(kind, items))
}

// HandleGet handles GET /api/content/{kind}/{slug} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := content.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	item, err := h.service.Get(ctx, kind, chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromItem(item))
}
