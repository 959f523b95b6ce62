package dashboard_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/idea-box/internal/dashboard"
	"github.com/frahmantamala/idea-box/internal/idea"
)

func TestDashboard(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dashboard Suite")
}

// mockIdeaFinder serves canned views: byUser keyed on user id, top is
// what a popular-sorted listing would return.
type mockIdeaFinder struct {
	byUser map[string][]*idea.IdeaView
	top    []*idea.IdeaView
}

func (m *mockIdeaFinder) FindByUserID(userID string) ([]*idea.IdeaView, error) {
	return m.byUser[userID], nil
}

func (m *mockIdeaFinder) FindAll(filters idea.Filters) ([]*idea.IdeaView, error) {
	top := m.top
	if filters.Limit > 0 && filters.Limit < len(top) {
		top = top[:filters.Limit]
	}
	return top, nil
}

func view(userID string, up, down, comments int64, status string) *idea.IdeaView {
	return &idea.IdeaView{
		Idea:         idea.Idea{UserID: userID, Status: status},
		UpVotes:      up,
		DownVotes:    down,
		CommentCount: comments,
	}
}

var _ = Describe("Dashboard Service", func() {
	var (
		finder  *mockIdeaFinder
		service *dashboard.Service
	)

	newService := func() *dashboard.Service {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		return dashboard.NewService(finder, dashboard.Config{Goal: 10, TopIdeasWindow: 10}, logger)
	}

	BeforeEach(func() {
		finder = &mockIdeaFinder{byUser: make(map[string][]*idea.IdeaView)}
		service = newService()
	})

	Describe("Progress", func() {
		It("reports submissions against the goal", func() {
			finder.byUser["u1"] = []*idea.IdeaView{
				view("u1", 0, 0, 0, idea.StatusPending),
				view("u1", 0, 0, 0, idea.StatusPending),
			}

			p, err := service.Progress("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Submitted).To(Equal(int64(2)))
			Expect(p.Goal).To(Equal(10))
		})

		It("reports zero for a user with no ideas", func() {
			p, err := service.Progress("nobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Submitted).To(BeZero())
		})
	})

	Describe("Metrics", func() {
		It("returns all zeroes for a user with no ideas", func() {
			m, err := service.Metrics("nobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(*m).To(Equal(dashboard.Metrics{}))
		})

		It("reports 100 percent engagement when every idea has interaction", func() {
			finder.byUser["u1"] = []*idea.IdeaView{
				view("u1", 1, 0, 0, idea.StatusPending),
				view("u1", 0, 0, 3, idea.StatusPending),
			}

			m, err := service.Metrics("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.EngagementRate).To(Equal(100.0))
		})

		It("reports 0 percent engagement when no idea has interaction", func() {
			finder.byUser["u1"] = []*idea.IdeaView{
				view("u1", 0, 0, 0, idea.StatusPending),
			}

			m, err := service.Metrics("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.EngagementRate).To(BeZero())
		})

		It("rounds the engagement rate to one decimal", func() {
			finder.byUser["u1"] = []*idea.IdeaView{
				view("u1", 1, 0, 0, idea.StatusPending),
				view("u1", 0, 0, 0, idea.StatusPending),
				view("u1", 0, 0, 0, idea.StatusPending),
			}

			m, err := service.Metrics("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.EngagementRate).To(Equal(33.3))
		})

		It("counts a downvote as engagement", func() {
			finder.byUser["u1"] = []*idea.IdeaView{
				view("u1", 0, 2, 0, idea.StatusPending),
			}

			m, err := service.Metrics("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.EngagementRate).To(Equal(100.0))
		})

		It("sums upvotes into community points", func() {
			finder.byUser["u1"] = []*idea.IdeaView{
				view("u1", 3, 1, 0, idea.StatusPending),
				view("u1", 4, 0, 0, idea.StatusApproved),
			}

			m, err := service.Metrics("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.CommunityPoints).To(Equal(int64(7)))
		})

		It("counts implemented ideas", func() {
			finder.byUser["u1"] = []*idea.IdeaView{
				view("u1", 0, 0, 1, idea.StatusImplemented),
				view("u1", 0, 0, 1, idea.StatusApproved),
			}

			m, err := service.Metrics("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.IdeasImplemented).To(Equal(int64(1)))
		})

		It("reports 100 percent top ideas when every idea is in the window", func() {
			mine := []*idea.IdeaView{
				view("u1", 5, 0, 0, idea.StatusPending),
				view("u1", 4, 0, 0, idea.StatusPending),
			}
			finder.byUser["u1"] = mine
			finder.top = mine

			m, err := service.Metrics("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.TopIdeasPercentage).To(Equal(100.0))
		})

		It("reports 0 percent top ideas when none rank", func() {
			finder.byUser["u1"] = []*idea.IdeaView{
				view("u1", 1, 0, 0, idea.StatusPending),
			}
			finder.top = []*idea.IdeaView{
				view("u2", 9, 0, 0, idea.StatusPending),
			}

			m, err := service.Metrics("u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.TopIdeasPercentage).To(BeZero())
		})

		It("caps the denominator at the window size for prolific users", func() {
			var mine []*idea.IdeaView
			for i := 0; i < 15; i++ {
				mine = append(mine, view("u1", int64(i), 0, 0, idea.StatusPending))
			}
			finder.byUser["u1"] = mine
			finder.top = mine[:10]

			m, err := service.Metrics("u1")
			Expect(err).NotTo(HaveOccurred())
			// 10 of top-10 over min(15, 10)
			Expect(m.TopIdeasPercentage).To(Equal(100.0))
		})
	})
})
