package comment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/idea-box/internal"
	"github.com/frahmantamala/idea-box/internal/idea"
	"github.com/frahmantamala/idea-box/internal/transport"
	"github.com/frahmantamala/idea-box/pkg/logger"
	"github.com/go-chi/chi/v5"
)

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

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	u, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ideaID, err := h.ideaID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	var dto CreateCommentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(ideaID, dto, u)
	if err != nil {
		h.handleCommentError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	ideaID, err := h.ideaID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	comments, err := h.Service.FindByIdea(ideaID)
	if err != nil {
		h.handleCommentError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, comments)
}

func (h *Handler) ideaID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "ideaId"), 10, 64)
}

func (h *Handler) handleCommentError(w http.ResponseWriter, err error) {
	if errors.Is(err, idea.ErrIdeaNotFound) {
		h.WriteError(w, http.StatusNotFound, "idea not found")
		return
	}
	h.HandleServiceError(w, err)
}
