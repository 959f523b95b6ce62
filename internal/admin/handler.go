package admin

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/idea-box/internal/transport"
	"github.com/frahmantamala/idea-box/pkg/logger"
)

// Handler serves the admin panel listings; every route sits behind the
// admin guard in the router.
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

func (h *Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, h.Service.Ideas)
}

func (h *Handler) ListVotes(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, h.Service.Votes)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, h.Service.Comments)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, h.Service.Users)
}

func (h *Handler) GetCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.TotalCounts()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, counts)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.EntityStats()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) listing(w http.ResponseWriter, r *http.Request, load func(bool) (*Listing, error)) {
	includeData := r.URL.Query().Get("includeData") == "true"
	result, err := load(includeData)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}
