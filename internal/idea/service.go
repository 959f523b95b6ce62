package idea

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/idea-box/internal/core/events"
	coreuser "github.com/frahmantamala/idea-box/internal/core/user"
	"github.com/google/uuid"
)

// Repository interface defines the data access methods for ideas
type Repository interface {
	Create(idea *Idea) error
	GetByID(id int64) (*Idea, error)
	Update(idea *Idea) error
	UpdateStatus(id int64, status string) error
	Delete(id int64) error
	FindAll(filters Filters) ([]*IdeaView, error)
	FindOne(id int64) (*IdeaView, error)
	CountByUser(userID string) (int64, error)
}

// ActivityLogger records domain events in the append-only activity log.
// The append is synchronous: a failure here fails the whole request even
// though the primary write is already committed.
type ActivityLogger interface {
	LogIdeaSubmitted(actor *coreuser.User, idea *Idea) error
	LogIdeaApproved(actor *coreuser.User, idea *Idea) error
	LogIdeaRejected(actor *coreuser.User, idea *Idea) error
	LogIdeaImplemented(actor *coreuser.User, idea *Idea) error
}

// EventPublisher fans out notifications that must not affect the request.
type EventPublisher interface {
	PublishAsync(ctx context.Context, event events.Event)
}

// EmployeeResolver maps a user id to the employee id used by listings.
type EmployeeResolver interface {
	EmployeeIDForUser(userID string) (string, error)
}

type Service struct {
	repo       Repository
	activities ActivityLogger
	bus        EventPublisher
	employees  EmployeeResolver
	logger     *slog.Logger
}

func NewService(repo Repository, activities ActivityLogger, bus EventPublisher, employees EmployeeResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		activities: activities,
		bus:        bus,
		employees:  employees,
		logger:     logger,
	}
}

// Create stores a new idea in pending status and logs the submission.
// The anonymous display id is generated here and never client-supplied.
func (s *Service) Create(dto CreateIdeaDTO, attachments []string, actor *coreuser.User) (*Idea, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("idea validation failed", "error", err, "user_id", actor.ID)
		return nil, err
	}

	now := time.Now()
	idea := &Idea{
		Title:             dto.Title,
		Description:       dto.Description,
		Category:          dto.Category,
		ImpactLevel:       dto.ImpactLevel,
		Hashtags:          dto.Hashtags,
		AttachmentURLs:    attachments,
		RequiredResources: dto.RequiredResources,
		AnonymousID:       fmt.Sprintf("anon-%s", uuid.NewString()[:8]),
		UserID:            actor.ID,
		Status:            StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(idea); err != nil {
		s.logger.Error("failed to create idea", "error", err, "user_id", actor.ID)
		return nil, err
	}

	if err := s.activities.LogIdeaSubmitted(actor, idea); err != nil {
		s.logger.Error("failed to log idea submission", "error", err, "idea_id", idea.ID)
		return nil, err
	}

	if s.bus != nil {
		s.bus.PublishAsync(context.Background(), events.NewIdeaSubmittedEvent(idea.ID, idea.Title, actor.ID))
	}

	s.logger.Info("idea created",
		"idea_id", idea.ID,
		"user_id", actor.ID,
		"category", idea.Category)

	return idea, nil
}

// FindAll returns the aggregated listing with live vote/comment counts.
func (s *Service) FindAll(filters Filters) ([]*IdeaView, error) {
	if filters.SortBy == "" {
		filters.SortBy = SortRecent
	}

	views, err := s.repo.FindAll(filters)
	if err != nil {
		s.logger.Error("failed to list ideas", "error", err)
		return nil, err
	}
	return views, nil
}

func (s *Service) FindOne(id int64) (*IdeaView, error) {
	view, err := s.repo.FindOne(id)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// FindByUserID lists the caller's own ideas via the employee id filter,
// matching the listing semantics everywhere else.
func (s *Service) FindByUserID(userID string) ([]*IdeaView, error) {
	employeeID, err := s.employees.EmployeeIDForUser(userID)
	if err != nil {
		return nil, err
	}
	return s.FindAll(Filters{EmployeeID: employeeID})
}

// Update applies an in-place edit; status is untouched.
func (s *Service) Update(id int64, dto UpdateIdeaDTO) (*Idea, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	idea, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		idea.Title = *dto.Title
	}
	if dto.Description != nil {
		idea.Description = *dto.Description
	}
	if dto.Category != nil {
		idea.Category = *dto.Category
	}
	if dto.ImpactLevel != nil {
		idea.ImpactLevel = *dto.ImpactLevel
	}
	if dto.Hashtags != nil {
		idea.Hashtags = dto.Hashtags
	}
	if dto.RequiredResources != nil {
		idea.RequiredResources = dto.RequiredResources
	}
	idea.UpdatedAt = time.Now()

	if err := s.repo.Update(idea); err != nil {
		s.logger.Error("failed to update idea", "error", err, "idea_id", id)
		return nil, err
	}

	return idea, nil
}

func (s *Service) Remove(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ChangeStatus persists the target status unconditionally and appends
// exactly one activity entry for terminal statuses. There is no guard
// against re-transitioning an idea that is already terminal; any status
// may overwrite any other. Authorization is the router's responsibility;
// actingUser is trusted as the attributed actor.
func (s *Service) ChangeStatus(id int64, status string, actingUser *coreuser.User) (*Idea, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	idea, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	idea.Status = status
	idea.UpdatedAt = time.Now()
	if err := s.repo.UpdateStatus(id, status); err != nil {
		s.logger.Error("failed to update idea status", "error", err, "idea_id", id, "status", status)
		return nil, err
	}

	switch status {
	case StatusApproved:
		err = s.activities.LogIdeaApproved(actingUser, idea)
	case StatusRejected:
		err = s.activities.LogIdeaRejected(actingUser, idea)
	case StatusImplemented:
		err = s.activities.LogIdeaImplemented(actingUser, idea)
	}
	if err != nil {
		s.logger.Error("failed to log status change", "error", err, "idea_id", id, "status", status)
		return nil, err
	}

	if s.bus != nil {
		s.bus.PublishAsync(context.Background(), events.NewIdeaStatusChangedEvent(id, status, actingUser.ID))
	}

	s.logger.Info("idea status changed",
		"idea_id", id,
		"status", status,
		"acting_user", actingUser.ID)

	return idea, nil
}
