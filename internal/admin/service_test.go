package admin_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/idea-box/internal/admin"
	"github.com/frahmantamala/idea-box/internal/comment"
	"github.com/frahmantamala/idea-box/internal/idea"
	"github.com/frahmantamala/idea-box/internal/user"
	"github.com/frahmantamala/idea-box/internal/vote"
)

func TestAdmin(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Admin Suite")
}

type mockIdeaStore struct {
	views    []*idea.IdeaView
	byStatus map[string]int64
}

func (m *mockIdeaStore) FindAll(filters idea.Filters) ([]*idea.IdeaView, error) {
	return m.views, nil
}

func (m *mockIdeaStore) Count() (int64, error) {
	return int64(len(m.views)), nil
}

func (m *mockIdeaStore) CountByStatus(status string) (int64, error) {
	return m.byStatus[status], nil
}

type mockVoteStore struct {
	votes []*vote.Vote
}

func (m *mockVoteStore) ListAll() ([]*vote.Vote, error) {
	return m.votes, nil
}

func (m *mockVoteStore) Count() (int64, error) {
	return int64(len(m.votes)), nil
}

func (m *mockVoteStore) CountByDirection(isUpvote bool) (int64, error) {
	var count int64
	for _, v := range m.votes {
		if v.IsUpvote == isUpvote {
			count++
		}
	}
	return count, nil
}

type mockCommentStore struct {
	comments []*comment.Comment
}

func (m *mockCommentStore) ListAll() ([]*comment.Comment, error) {
	return m.comments, nil
}

func (m *mockCommentStore) Count() (int64, error) {
	return int64(len(m.comments)), nil
}

type mockUserStore struct {
	users []*user.User
}

func (m *mockUserStore) List() ([]*user.User, error) {
	return m.users, nil
}

func (m *mockUserStore) Count() (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserStore) CountByRole(role string) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

var _ = Describe("Admin Service", func() {
	var service *admin.Service

	BeforeEach(func() {
		ideas := &mockIdeaStore{
			views: []*idea.IdeaView{
				{Idea: idea.Idea{ID: 1, Status: idea.StatusPending}},
				{Idea: idea.Idea{ID: 2, Status: idea.StatusApproved}},
				{Idea: idea.Idea{ID: 3, Status: idea.StatusImplemented}},
			},
			byStatus: map[string]int64{
				idea.StatusPending:     1,
				idea.StatusApproved:    1,
				idea.StatusImplemented: 1,
			},
		}
		votes := &mockVoteStore{votes: []*vote.Vote{
			{ID: 1, IsUpvote: true, IdeaID: 1},
			{ID: 2, IsUpvote: true, IdeaID: 2},
			{ID: 3, IsUpvote: false, IdeaID: 2},
		}}
		comments := &mockCommentStore{comments: []*comment.Comment{
			{ID: 1, Text: "nice", IdeaID: 1},
		}}
		users := &mockUserStore{users: []*user.User{
			{ID: "u1", Role: "admin", PasswordHash: "secret"},
			{ID: "u2", Role: "employee", PasswordHash: "secret"},
		}}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = admin.NewService(ideas, votes, comments, users, logger)
	})

	Describe("listings", func() {
		It("returns counts only by default", func() {
			listing, err := service.Ideas(false)
			Expect(err).NotTo(HaveOccurred())
			Expect(listing.Count).To(Equal(int64(3)))
			Expect(listing.Data).To(BeNil())
		})

		It("includes data on request", func() {
			listing, err := service.Votes(true)
			Expect(err).NotTo(HaveOccurred())
			Expect(listing.Count).To(Equal(int64(3)))
			Expect(listing.Data).NotTo(BeNil())
		})

		It("sanitizes listed users", func() {
			listing, err := service.Users(true)
			Expect(err).NotTo(HaveOccurred())

			publics, ok := listing.Data.([]user.Public)
			Expect(ok).To(BeTrue())
			Expect(publics).To(HaveLen(2))
		})
	})

	Describe("TotalCounts", func() {
		It("counts every entity", func() {
			counts, err := service.TotalCounts()
			Expect(err).NotTo(HaveOccurred())
			Expect(*counts).To(Equal(admin.TotalCounts{
				Ideas:    3,
				Votes:    3,
				Comments: 1,
				Users:    2,
			}))
		})
	})

	Describe("EntityStats", func() {
		It("breaks totals down per status, direction and role", func() {
			stats, err := service.EntityStats()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Ideas.Total).To(Equal(int64(3)))
			Expect(stats.Ideas.Pending).To(Equal(int64(1)))
			Expect(stats.Ideas.Approved).To(Equal(int64(1)))
			Expect(stats.Ideas.Rejected).To(BeZero())
			Expect(stats.Ideas.Implemented).To(Equal(int64(1)))
			Expect(stats.Votes.UpVotes).To(Equal(int64(2)))
			Expect(stats.Votes.DownVotes).To(Equal(int64(1)))
			Expect(stats.Users.Admins).To(Equal(int64(1)))
		})
	})
})
