package vote

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

func (h *Handler) CastVote(w http.ResponseWriter, r *http.Request) {
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

	var dto CastVoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	result, err := h.Service.Cast(ideaID, *dto.IsUpvote, u)
	if err != nil {
		h.handleVoteError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) ListVotes(w http.ResponseWriter, r *http.Request) {
	ideaID, err := h.ideaID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	votes, err := h.Service.VotesByIdea(ideaID)
	if err != nil {
		h.handleVoteError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, votes)
}

func (h *Handler) GetVoteCounts(w http.ResponseWriter, r *http.Request) {
	ideaID, err := h.ideaID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	counts, err := h.Service.CountsByIdea(ideaID)
	if err != nil {
		h.handleVoteError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, counts)
}

func (h *Handler) GetUserVote(w http.ResponseWriter, r *http.Request) {
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

	v, err := h.Service.UserVote(ideaID, u.ID)
	if err != nil {
		h.handleVoteError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, UserVoteResponse{Vote: v})
}

func (h *Handler) ideaID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "ideaId"), 10, 64)
}

func (h *Handler) handleVoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, idea.ErrIdeaNotFound):
		h.WriteError(w, http.StatusNotFound, "idea not found")
	case errors.Is(err, ErrVoteConflict):
		h.WriteError(w, http.StatusConflict, "vote already exists")
	default:
		h.HandleServiceError(w, err)
	}
}
