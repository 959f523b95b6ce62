package comment_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/idea-box/internal/comment"
	coreuser "github.com/frahmantamala/idea-box/internal/core/user"
	"github.com/frahmantamala/idea-box/internal/idea"
)

func TestComment(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Comment Suite")
}

type mockCommentRepository struct {
	comments []*comment.Comment
	nextID   int64
}

func (m *mockCommentRepository) Create(c *comment.Comment) error {
	m.nextID++
	c.ID = m.nextID
	stored := *c
	// prepend: reads are newest-first
	m.comments = append([]*comment.Comment{&stored}, m.comments...)
	return nil
}

func (m *mockCommentRepository) FindByIdea(ideaID int64) ([]*comment.Comment, error) {
	var result []*comment.Comment
	for _, c := range m.comments {
		if c.IdeaID == ideaID {
			result = append(result, c)
		}
	}
	return result, nil
}

type mockIdeaGetter struct {
	ideas map[int64]*idea.Idea
}

func (m *mockIdeaGetter) GetByID(id int64) (*idea.Idea, error) {
	i, ok := m.ideas[id]
	if !ok {
		return nil, idea.ErrIdeaNotFound
	}
	return i, nil
}

type mockCommentLogger struct {
	logged   int
	logError error
}

func (m *mockCommentLogger) LogIdeaCommented(actor *coreuser.User, i *idea.Idea) error {
	if m.logError != nil {
		return m.logError
	}
	m.logged++
	return nil
}

var _ = Describe("Comment Service", func() {
	var (
		repo       *mockCommentRepository
		activities *mockCommentLogger
		service    *comment.Service
		actor      *coreuser.User
	)

	BeforeEach(func() {
		repo = &mockCommentRepository{}
		ideas := &mockIdeaGetter{ideas: map[int64]*idea.Idea{
			1: {ID: 1, Title: "Meeting-free Fridays"},
		}}
		activities = &mockCommentLogger{}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = comment.NewService(repo, ideas, activities, logger)
		actor = &coreuser.User{ID: "user-1", Name: "Sari", Email: "sari@company.test"}
	})

	Describe("Create", func() {
		It("stores the comment attributed to the actor", func() {
			created, err := service.Create(1, comment.CreateCommentDTO{Text: "love it"}, actor)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.UserID).NotTo(BeNil())
			Expect(*created.UserID).To(Equal("user-1"))
			Expect(activities.logged).To(Equal(1))
		})

		It("rejects comments on missing ideas", func() {
			_, err := service.Create(99, comment.CreateCommentDTO{Text: "hello"}, actor)
			Expect(err).To(MatchError(idea.ErrIdeaNotFound))
			Expect(activities.logged).To(BeZero())
		})

		It("rejects empty text", func() {
			_, err := service.Create(1, comment.CreateCommentDTO{}, actor)
			Expect(err).To(HaveOccurred())
		})

		It("fails when the activity append fails", func() {
			activities.logError = os.ErrClosed
			_, err := service.Create(1, comment.CreateCommentDTO{Text: "hello"}, actor)
			Expect(err).To(MatchError(os.ErrClosed))
		})
	})

	Describe("FindByIdea", func() {
		It("lists comments newest-first", func() {
			_, err := service.Create(1, comment.CreateCommentDTO{Text: "first"}, actor)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(1, comment.CreateCommentDTO{Text: "second"}, actor)
			Expect(err).NotTo(HaveOccurred())

			comments, err := service.FindByIdea(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(2))
			Expect(comments[0].Text).To(Equal("second"))
			Expect(comments[1].Text).To(Equal("first"))
		})

		It("rejects reads on missing ideas", func() {
			_, err := service.FindByIdea(99)
			Expect(err).To(MatchError(idea.ErrIdeaNotFound))
		})
	})
})
