package idea

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/idea-box/internal"
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

func (h *Handler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	u, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateIdeaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(dto, dto.Attachments, u)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset := transport.ParseLimitOffset(r, 0)

	filters := Filters{
		EmployeeID: q.Get("employeeId"),
		Category:   q.Get("category"),
		Search:     q.Get("search"),
		SortBy:     q.Get("sortBy"),
		Limit:      limit,
		Offset:     offset,
	}

	views, err := h.Service.FindAll(filters)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) GetIdea(w http.ResponseWriter, r *http.Request) {
	id, err := h.ideaID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	view, err := h.Service.FindOne(id)
	if err != nil {
		h.handleIdeaError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) UpdateIdea(w http.ResponseWriter, r *http.Request) {
	id, err := h.ideaID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	var dto UpdateIdeaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(id, dto)
	if err != nil {
		h.handleIdeaError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	id, err := h.ideaID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	if err := h.Service.Remove(id); err != nil {
		h.handleIdeaError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "idea deleted"})
}

// ApproveIdea, RejectIdea and MarkImplemented share the status-change flow;
// the router mounts them behind the admin guard.
func (h *Handler) ApproveIdea(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, StatusApproved)
}

func (h *Handler) RejectIdea(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, StatusRejected)
}

func (h *Handler) MarkImplemented(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, StatusImplemented)
}

func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request, status string) {
	u, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.ideaID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	updated, err := h.Service.ChangeStatus(id, status, u)
	if err != nil {
		h.handleIdeaError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) ideaID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) handleIdeaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrIdeaNotFound):
		h.WriteError(w, http.StatusNotFound, "idea not found")
	case errors.Is(err, ErrInvalidStatus):
		h.WriteError(w, http.StatusBadRequest, "invalid idea status")
	default:
		h.HandleServiceError(w, err)
	}
}
