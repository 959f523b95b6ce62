package vote

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/idea-box/internal/core/events"
	coreuser "github.com/frahmantamala/idea-box/internal/core/user"
	"github.com/frahmantamala/idea-box/internal/idea"
)

// Repository interface defines the data access methods for votes
type Repository interface {
	Create(v *Vote) error
	UpdateDirection(id int64, isUpvote bool) error
	Delete(id int64) error
	GetByUserAndIdea(userID string, ideaID int64) (*Vote, error)
	FindByIdea(ideaID int64) ([]*Vote, error)
	CountsByIdea(ideaID int64) (Counts, error)
}

// IdeaGetter verifies the target idea exists and supplies the snapshot
// fields the activity log captures.
type IdeaGetter interface {
	GetByID(id int64) (*idea.Idea, error)
}

// ActivityLogger appends idea_voted entries. Removing a vote is
// deliberately silent; only creates and flips are logged.
type ActivityLogger interface {
	LogIdeaVoted(actor *coreuser.User, i *idea.Idea, isUpvote bool) error
}

type EventPublisher interface {
	PublishAsync(ctx context.Context, event events.Event)
}

type Service struct {
	repo       Repository
	ideas      IdeaGetter
	activities ActivityLogger
	bus        EventPublisher
	logger     *slog.Logger
}

func NewService(repo Repository, ideas IdeaGetter, activities ActivityLogger, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		ideas:      ideas,
		activities: activities,
		bus:        bus,
		logger:     logger,
	}
}

// Cast runs the three-way toggle for one (user, idea) pair:
// no existing vote creates one, an opposite vote flips in place, a
// same-direction vote is removed. Creation and flip append an activity
// entry; removal does not.
func (s *Service) Cast(ideaID int64, isUpvote bool, actor *coreuser.User) (*CastResult, error) {
	target, err := s.ideas.GetByID(ideaID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserAndIdea(actor.ID, ideaID)
	if err != nil && err != ErrVoteNotFound {
		return nil, err
	}

	if existing == nil {
		v := &Vote{
			IsUpvote: isUpvote,
			UserID:   actor.ID,
			IdeaID:   ideaID,
		}
		if err := s.repo.Create(v); err != nil {
			s.logger.Error("failed to create vote", "error", err, "idea_id", ideaID, "user_id", actor.ID)
			return nil, err
		}
		if err := s.logVote(actor, target, isUpvote); err != nil {
			return nil, err
		}
		return &CastResult{Outcome: OutcomeCreated, Vote: v}, nil
	}

	if existing.IsUpvote == isUpvote {
		if err := s.repo.Delete(existing.ID); err != nil {
			s.logger.Error("failed to remove vote", "error", err, "vote_id", existing.ID)
			return nil, err
		}
		return &CastResult{Outcome: OutcomeRemoved}, nil
	}

	if err := s.repo.UpdateDirection(existing.ID, isUpvote); err != nil {
		s.logger.Error("failed to flip vote", "error", err, "vote_id", existing.ID)
		return nil, err
	}
	existing.IsUpvote = isUpvote
	if err := s.logVote(actor, target, isUpvote); err != nil {
		return nil, err
	}
	return &CastResult{Outcome: OutcomeUpdated, Vote: existing}, nil
}

func (s *Service) logVote(actor *coreuser.User, target *idea.Idea, isUpvote bool) error {
	if err := s.activities.LogIdeaVoted(actor, target, isUpvote); err != nil {
		s.logger.Error("failed to log vote", "error", err, "idea_id", target.ID)
		return err
	}
	if s.bus != nil {
		s.bus.PublishAsync(context.Background(), events.NewIdeaVotedEvent(target.ID, actor.ID, isUpvote))
	}
	return nil
}

// CountsByIdea tallies up and down votes for one idea.
func (s *Service) CountsByIdea(ideaID int64) (Counts, error) {
	if _, err := s.ideas.GetByID(ideaID); err != nil {
		return Counts{}, err
	}
	return s.repo.CountsByIdea(ideaID)
}

// VotesByIdea lists all votes on an idea.
func (s *Service) VotesByIdea(ideaID int64) ([]*Vote, error) {
	if _, err := s.ideas.GetByID(ideaID); err != nil {
		return nil, err
	}
	return s.repo.FindByIdea(ideaID)
}

// UserVote returns the caller's vote on an idea, or nil if absent.
func (s *Service) UserVote(ideaID int64, userID string) (*Vote, error) {
	v, err := s.repo.GetByUserAndIdea(userID, ideaID)
	if err != nil {
		if err == ErrVoteNotFound {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}
