package categories

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-coop/backoffice/internal/masterdata/shared"
	"github.com/meridian-coop/backoffice/internal/platform/httpx"
)

// Handler serves the category tree endpoints.
type Handler struct {
	logger  *slog.Logger
	service Repository
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service Repository) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers category routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/categories", h.list)
	r.Get("/categories/{id}", h.show)
	r.Get("/categories/{id}/children", h.children)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := shared.ParseListQuery(r)
	items, total, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logger.Error("list categories failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "failed to load categories")
		return
	}
	httpx.JSON(w, http.StatusOK, shared.NewEnvelope(items, q, total))
}

func (h *Handler) children(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}
	q := shared.ParseListQuery(r)
	items, total, err := h.service.Children(r.Context(), id, q)
	if err != nil {
		h.logger.Error("list category children failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "failed to load categories")
		return
	}
	httpx.JSON(w, http.StatusOK, shared.NewEnvelope(items, q, total))
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, category)
}
