package user

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/idea-box/internal"
	"github.com/frahmantamala/idea-box/internal/transport"
	"github.com/frahmantamala/idea-box/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ServiceAPI interface {
	GetByID(id string) (*Public, error)
	ActivitySummary(userID string) (*ActivitySummaryResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	u, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.Logger.Error("GetCurrentUser: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	pub, err := h.Service.GetByID(u.ID)
	if err != nil {
		h.Logger.Error("GetCurrentUser: service error", "error", err, "user_id", u.ID)
		if err == ErrNotFound {
			h.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "failed to get user")
		return
	}

	h.WriteJSON(w, http.StatusOK, pub)
}

func (h *Handler) GetUserActivity(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	summary, err := h.Service.ActivitySummary(userID)
	if err != nil {
		h.Logger.Error("GetUserActivity: service error", "error", err, "user_id", userID)
		if err == ErrNotFound {
			h.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "failed to get user activity")
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}
