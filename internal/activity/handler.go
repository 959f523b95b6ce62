package activity

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/idea-box/internal/transport"
	"github.com/frahmantamala/idea-box/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// Handler serves the admin activity feed; the router mounts every route
// behind the admin guard.
type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.Recent(h.limit(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) ActivityByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	entries, err := h.Service.ByUser(userID, h.limit(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) ActivityByIdea(w http.ResponseWriter, r *http.Request) {
	ideaID, err := strconv.ParseInt(chi.URLParam(r, "ideaId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	entries, err := h.Service.ByIdea(ideaID, h.limit(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) ActivityByType(w http.ResponseWriter, r *http.Request) {
	activityType := chi.URLParam(r, "type")
	if !ValidType(activityType) {
		h.WriteError(w, http.StatusBadRequest, "invalid activity type")
		return
	}

	entries, err := h.Service.ByType(activityType, h.limit(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, entries)
}

// limit reads the optional ?limit param; the service clamps it to the
// configured maximum for the query shape.
func (h *Handler) limit(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 {
			return l
		}
	}
	return 0
}
