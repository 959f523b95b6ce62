package comment

import (
	"log/slog"
	"time"

	coreuser "github.com/frahmantamala/idea-box/internal/core/user"
	"github.com/frahmantamala/idea-box/internal/idea"
)

// Repository interface defines the data access methods for comments
type Repository interface {
	Create(c *Comment) error
	FindByIdea(ideaID int64) ([]*Comment, error)
}

// IdeaGetter verifies the target idea exists before a comment is stored.
type IdeaGetter interface {
	GetByID(id int64) (*idea.Idea, error)
}

// ActivityLogger appends idea_commented entries.
type ActivityLogger interface {
	LogIdeaCommented(actor *coreuser.User, i *idea.Idea) error
}

type Service struct {
	repo       Repository
	ideas      IdeaGetter
	activities ActivityLogger
	logger     *slog.Logger
}

func NewService(repo Repository, ideas IdeaGetter, activities ActivityLogger, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		ideas:      ideas,
		activities: activities,
		logger:     logger,
	}
}

// Create stores a comment after checking the idea exists, then logs it.
func (s *Service) Create(ideaID int64, dto CreateCommentDTO, actor *coreuser.User) (*Comment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	target, err := s.ideas.GetByID(ideaID)
	if err != nil {
		return nil, err
	}

	userID := actor.ID
	c := &Comment{
		Text:      dto.Text,
		UserID:    &userID,
		IdeaID:    ideaID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create comment", "error", err, "idea_id", ideaID, "user_id", actor.ID)
		return nil, err
	}

	if err := s.activities.LogIdeaCommented(actor, target); err != nil {
		s.logger.Error("failed to log comment", "error", err, "idea_id", ideaID)
		return nil, err
	}

	return c, nil
}

// FindByIdea lists comments newest-first.
func (s *Service) FindByIdea(ideaID int64) ([]*Comment, error) {
	if _, err := s.ideas.GetByID(ideaID); err != nil {
		return nil, err
	}
	return s.repo.FindByIdea(ideaID)
}
