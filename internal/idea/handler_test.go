package idea_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/idea-box/internal/idea"
)

type capturingIdeaRepository struct {
	*mockIdeaRepository
	lastFilters idea.Filters
}

func (c *capturingIdeaRepository) FindAll(filters idea.Filters) ([]*idea.IdeaView, error) {
	c.lastFilters = filters
	return c.mockIdeaRepository.FindAll(filters)
}

var _ = Describe("Idea Handler", func() {
	var (
		repo    *capturingIdeaRepository
		handler *idea.Handler
	)

	BeforeEach(func() {
		repo = &capturingIdeaRepository{mockIdeaRepository: newMockIdeaRepository()}
		resolver := &mockEmployeeResolver{employeeIDs: map[string]string{}}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service := idea.NewService(repo, &mockActivityRecorder{}, nil, resolver, logger)
		handler = idea.NewHandler(service)
	})

	Describe("ListIdeas", func() {
		It("honors any positive limit without an upper bound", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/idea?limit=150&offset=10", nil)
			rec := httptest.NewRecorder()

			handler.ListIdeas(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(repo.lastFilters.Limit).To(Equal(150))
			Expect(repo.lastFilters.Offset).To(Equal(10))
		})

		It("leaves the listing unbounded when no limit is given", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/idea", nil)
			rec := httptest.NewRecorder()

			handler.ListIdeas(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(repo.lastFilters.Limit).To(BeZero())
			Expect(repo.lastFilters.Offset).To(BeZero())
		})

		It("ignores a malformed limit", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/idea?limit=abc", nil)
			rec := httptest.NewRecorder()

			handler.ListIdeas(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(repo.lastFilters.Limit).To(BeZero())
		})
	})
})
