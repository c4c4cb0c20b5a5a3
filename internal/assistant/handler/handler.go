package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bizform/internal/assistant"
	"bizform/pkg/platform/httputil"
	"bizform/pkg/requestcontext"
)

// Service defines the interface for assistant chat operations.
type Service interface {
	Chat(ctx context.Context, message string, history []assistant.Message, tier assistant.Tier) (*assistant.Reply, error)
}

// Handler wires the chat endpoint to the assistant service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an assistant handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the chat endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/assistant/chat", h.HandleChat)
}

// HandleChat handles POST /api/assistant/chat requests.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ChatRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	reply, err := h.service.Chat(ctx, req.Message, req.ParsedHistory(), req.ParsedTier())
	if err != nil {
		h.logger.ErrorContext(ctx, "assistant chat failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "assistant chat answered",
		"request_id", requestID,
		"tier", req.ParsedTier(),
		"cached", reply.Cached,
		"fallback", reply.Fallback,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromReply(reply))
}
