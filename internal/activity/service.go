package activity

import (
	"log/slog"
	"time"

	coreuser "github.com/frahmantamala/idea-box/internal/core/user"
	"github.com/frahmantamala/idea-box/internal/idea"
)

// Repository interface defines the data access methods for activities
type Repository interface {
	Create(a *Activity) error
	Recent(limit int) ([]*Activity, error)
	ByUser(userID string, limit int) ([]*Activity, error)
	ByIdea(ideaID int64, limit int) ([]*Activity, error)
	ByType(activityType string, limit int) ([]*Activity, error)
}

// Limits carries the configured feed sizes; the filtered reads use the
// smaller default.
type Limits struct {
	Feed   int
	Filter int
}

type Service struct {
	repo   Repository
	limits Limits
	logger *slog.Logger
}

func NewService(repo Repository, limits Limits, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		limits: limits,
		logger: logger,
	}
}

// log appends one entry; writers treat a failure as a request failure
// even though their primary write is already committed.
func (s *Service) log(activityType string, actor *coreuser.User, i *idea.Idea, voteType string) error {
	ideaID := i.ID
	a := &Activity{
		Type:   activityType,
		UserID: actor.ID,
		IdeaID: &ideaID,
		Metadata: Metadata{
			IdeaTitle: i.Title,
			UserName:  actor.Name,
			UserEmail: actor.Email,
			VoteType:  voteType,
		},
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(a); err != nil {
		s.logger.Error("failed to append activity", "error", err, "type", activityType, "idea_id", i.ID)
		return err
	}
	return nil
}

func (s *Service) LogIdeaSubmitted(actor *coreuser.User, i *idea.Idea) error {
	return s.log(TypeIdeaSubmitted, actor, i, "")
}

func (s *Service) LogIdeaVoted(actor *coreuser.User, i *idea.Idea, isUpvote bool) error {
	voteType := "downvote"
	if isUpvote {
		voteType = "upvote"
	}
	return s.log(TypeIdeaVoted, actor, i, voteType)
}

func (s *Service) LogIdeaCommented(actor *coreuser.User, i *idea.Idea) error {
	return s.log(TypeIdeaCommented, actor, i, "")
}

func (s *Service) LogIdeaApproved(actor *coreuser.User, i *idea.Idea) error {
	return s.log(TypeIdeaApproved, actor, i, "")
}

func (s *Service) LogIdeaRejected(actor *coreuser.User, i *idea.Idea) error {
	return s.log(TypeIdeaRejected, actor, i, "")
}

func (s *Service) LogIdeaImplemented(actor *coreuser.User, i *idea.Idea) error {
	return s.log(TypeIdeaImplemented, actor, i, "")
}

// Recent returns the newest entries across all types.
func (s *Service) Recent(limit int) ([]*Activity, error) {
	if limit <= 0 || limit > s.limits.Feed {
		limit = s.limits.Feed
	}
	return s.repo.Recent(limit)
}

func (s *Service) ByUser(userID string, limit int) ([]*Activity, error) {
	if limit <= 0 || limit > s.limits.Filter {
		limit = s.limits.Filter
	}
	return s.repo.ByUser(userID, limit)
}

func (s *Service) ByIdea(ideaID int64, limit int) ([]*Activity, error) {
	if limit <= 0 || limit > s.limits.Filter {
		limit = s.limits.Filter
	}
	return s.repo.ByIdea(ideaID, limit)
}

func (s *Service) ByType(activityType string, limit int) ([]*Activity, error) {
	if limit <= 0 || limit > s.limits.Filter {
		limit = s.limits.Filter
	}
	return s.repo.ByType(activityType, limit)
}
