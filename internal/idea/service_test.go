package idea_test

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	coreuser "github.com/frahmantamala/idea-box/internal/core/user"
	"github.com/frahmantamala/idea-box/internal/idea"
)

func TestIdea(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Idea Suite")
}

// Mock repository for testing
type mockIdeaRepository struct {
	ideas       map[int64]*idea.Idea
	nextID      int64
	createError error
}

func newMockIdeaRepository() *mockIdeaRepository {
	return &mockIdeaRepository{
		ideas:  make(map[int64]*idea.Idea),
		nextID: 1,
	}
}

func (m *mockIdeaRepository) Create(i *idea.Idea) error {
	if m.createError != nil {
		return m.createError
	}
	i.ID = m.nextID
	m.nextID++
	stored := *i
	m.ideas[i.ID] = &stored
	return nil
}

func (m *mockIdeaRepository) GetByID(id int64) (*idea.Idea, error) {
	i, ok := m.ideas[id]
	if !ok {
		return nil, idea.ErrIdeaNotFound
	}
	copied := *i
	return &copied, nil
}

func (m *mockIdeaRepository) Update(i *idea.Idea) error {
	if _, ok := m.ideas[i.ID]; !ok {
		return idea.ErrIdeaNotFound
	}
	stored := *i
	m.ideas[i.ID] = &stored
	return nil
}

func (m *mockIdeaRepository) UpdateStatus(id int64, status string) error {
	i, ok := m.ideas[id]
	if !ok {
		return idea.ErrIdeaNotFound
	}
	i.Status = status
	return nil
}

func (m *mockIdeaRepository) Delete(id int64) error {
	if _, ok := m.ideas[id]; !ok {
		return idea.ErrIdeaNotFound
	}
	delete(m.ideas, id)
	return nil
}

func (m *mockIdeaRepository) FindAll(filters idea.Filters) ([]*idea.IdeaView, error) {
	var views []*idea.IdeaView
	for _, i := range m.ideas {
		views = append(views, &idea.IdeaView{Idea: *i})
	}
	return views, nil
}

func (m *mockIdeaRepository) FindOne(id int64) (*idea.IdeaView, error) {
	i, ok := m.ideas[id]
	if !ok {
		return nil, idea.ErrIdeaNotFound
	}
	return &idea.IdeaView{Idea: *i}, nil
}

func (m *mockIdeaRepository) CountByUser(userID string) (int64, error) {
	var count int64
	for _, i := range m.ideas {
		if i.UserID == userID {
			count++
		}
	}
	return count, nil
}

type mockActivityRecorder struct {
	types    []string
	logError error
}

func (m *mockActivityRecorder) record(t string) error {
	if m.logError != nil {
		return m.logError
	}
	m.types = append(m.types, t)
	return nil
}

func (m *mockActivityRecorder) LogIdeaSubmitted(actor *coreuser.User, i *idea.Idea) error {
	return m.record("idea_submitted")
}

func (m *mockActivityRecorder) LogIdeaApproved(actor *coreuser.User, i *idea.Idea) error {
	return m.record("idea_approved")
}

func (m *mockActivityRecorder) LogIdeaRejected(actor *coreuser.User, i *idea.Idea) error {
	return m.record("idea_rejected")
}

func (m *mockActivityRecorder) LogIdeaImplemented(actor *coreuser.User, i *idea.Idea) error {
	return m.record("idea_implemented")
}

type mockEmployeeResolver struct {
	employeeIDs map[string]string
}

func (m *mockEmployeeResolver) EmployeeIDForUser(userID string) (string, error) {
	return m.employeeIDs[userID], nil
}

var _ = Describe("Idea Service", func() {
	var (
		repo       *mockIdeaRepository
		activities *mockActivityRecorder
		service    *idea.Service
		actor      *coreuser.User
		admin      *coreuser.User
	)

	BeforeEach(func() {
		repo = newMockIdeaRepository()
		activities = &mockActivityRecorder{}
		resolver := &mockEmployeeResolver{employeeIDs: map[string]string{"user-1": "EMP002"}}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = idea.NewService(repo, activities, nil, resolver, logger)
		actor = &coreuser.User{ID: "user-1", Name: "Sari", Email: "sari@company.test", Role: coreuser.RoleEmployee}
		admin = &coreuser.User{ID: "admin-1", Name: "Admin", Email: "admin@company.test", Role: coreuser.RoleAdmin}
	})

	validDTO := func() idea.CreateIdeaDTO {
		return idea.CreateIdeaDTO{
			Title:       "Meeting-free Fridays",
			Description: "Block Fridays for focused work.",
			Category:    "Process Improvement",
			ImpactLevel: "medium",
		}
	}

	Describe("Create", func() {
		It("stores the idea in pending status", func() {
			created, err := service.Create(validDTO(), nil, actor)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal(idea.StatusPending))
			Expect(created.UserID).To(Equal(actor.ID))
		})

		It("generates an anonymous display id", func() {
			created, err := service.Create(validDTO(), nil, actor)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.AnonymousID).To(HavePrefix("anon-"))
			Expect(created.AnonymousID).To(HaveLen(len("anon-") + 8))
		})

		It("generates distinct anonymous ids per submission", func() {
			first, err := service.Create(validDTO(), nil, actor)
			Expect(err).NotTo(HaveOccurred())
			second, err := service.Create(validDTO(), nil, actor)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.AnonymousID).NotTo(Equal(second.AnonymousID))
		})

		It("logs exactly one submission entry", func() {
			_, err := service.Create(validDTO(), nil, actor)
			Expect(err).NotTo(HaveOccurred())
			Expect(activities.types).To(Equal([]string{"idea_submitted"}))
		})

		It("rejects an invalid impact level", func() {
			dto := validDTO()
			dto.ImpactLevel = "severe"
			_, err := service.Create(dto, nil, actor)
			Expect(err).To(HaveOccurred())
			Expect(activities.types).To(BeEmpty())
		})

		It("rejects a missing title", func() {
			dto := validDTO()
			dto.Title = ""
			_, err := service.Create(dto, nil, actor)
			Expect(err).To(HaveOccurred())
		})

		It("fails when the activity append fails", func() {
			activities.logError = idea.ErrIdeaNotFound
			_, err := service.Create(validDTO(), nil, actor)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ChangeStatus", func() {
		var created *idea.Idea

		BeforeEach(func() {
			var err error
			created, err = service.Create(validDTO(), nil, actor)
			Expect(err).NotTo(HaveOccurred())
			activities.types = nil
		})

		It("logs exactly one entry per terminal transition", func() {
			_, err := service.ChangeStatus(created.ID, idea.StatusApproved, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(activities.types).To(Equal([]string{"idea_approved"}))

			_, err = service.ChangeStatus(created.ID, idea.StatusRejected, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(activities.types).To(Equal([]string{"idea_approved", "idea_rejected"}))

			_, err = service.ChangeStatus(created.ID, idea.StatusImplemented, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(activities.types).To(Equal([]string{"idea_approved", "idea_rejected", "idea_implemented"}))
		})

		It("does not log a transition back to pending", func() {
			_, err := service.ChangeStatus(created.ID, idea.StatusPending, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(activities.types).To(BeEmpty())
		})

		It("overwrites a terminal status without a guard", func() {
			_, err := service.ChangeStatus(created.ID, idea.StatusRejected, admin)
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.ChangeStatus(created.ID, idea.StatusApproved, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(idea.StatusApproved))
		})

		It("rejects unknown statuses", func() {
			_, err := service.ChangeStatus(created.ID, "archived", admin)
			Expect(err).To(MatchError(idea.ErrInvalidStatus))
		})

		It("propagates not found", func() {
			_, err := service.ChangeStatus(9999, idea.StatusApproved, admin)
			Expect(err).To(MatchError(idea.ErrIdeaNotFound))
			Expect(activities.types).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		It("edits fields in place without touching status", func() {
			created, err := service.Create(validDTO(), nil, actor)
			Expect(err).NotTo(HaveOccurred())

			title := "Deep-work Fridays"
			updated, err := service.Update(created.ID, idea.UpdateIdeaDTO{Title: &title})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal(title))
			Expect(updated.Status).To(Equal(idea.StatusPending))
			Expect(updated.Description).To(Equal(created.Description))
		})

		It("propagates not found", func() {
			title := "x"
			_, err := service.Update(42, idea.UpdateIdeaDTO{Title: &title})
			Expect(err).To(MatchError(idea.ErrIdeaNotFound))
		})
	})

	Describe("Remove", func() {
		It("deletes an existing idea", func() {
			created, err := service.Create(validDTO(), nil, actor)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Remove(created.ID)).To(Succeed())
			_, err = service.FindOne(created.ID)
			Expect(err).To(MatchError(idea.ErrIdeaNotFound))
		})

		It("propagates not found", func() {
			Expect(service.Remove(42)).To(MatchError(idea.ErrIdeaNotFound))
		})
	})
})

var _ = Describe("Status helpers", func() {
	It("treats only the three transition targets as terminal", func() {
		for status, terminal := range map[string]bool{
			idea.StatusPending:     false,
			idea.StatusApproved:    true,
			idea.StatusRejected:    true,
			idea.StatusImplemented: true,
		} {
			i := idea.Idea{Status: status, CreatedAt: time.Now()}
			Expect(i.IsTerminal()).To(Equal(terminal), status)
		}
	})

	It("validates status spellings strictly", func() {
		Expect(idea.ValidStatus("implemented")).To(BeTrue())
		Expect(idea.ValidStatus("implmented")).To(BeFalse())
		Expect(idea.ValidStatus(strings.ToUpper(idea.StatusPending))).To(BeFalse())
	})
})
