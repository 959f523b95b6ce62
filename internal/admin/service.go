package admin

import (
	"log/slog"

	"github.com/frahmantamala/idea-box/internal/comment"
	coreuser "github.com/frahmantamala/idea-box/internal/core/user"
	"github.com/frahmantamala/idea-box/internal/idea"
	"github.com/frahmantamala/idea-box/internal/user"
	"github.com/frahmantamala/idea-box/internal/vote"
)

// The stores are the slices of each repository the admin panel reads.

type IdeaStore interface {
	FindAll(filters idea.Filters) ([]*idea.IdeaView, error)
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

type VoteStore interface {
	ListAll() ([]*vote.Vote, error)
	Count() (int64, error)
	CountByDirection(isUpvote bool) (int64, error)
}

type CommentStore interface {
	ListAll() ([]*comment.Comment, error)
	Count() (int64, error)
}

type UserStore interface {
	List() ([]*user.User, error)
	Count() (int64, error)
	CountByRole(role string) (int64, error)
}

type Service struct {
	ideas    IdeaStore
	votes    VoteStore
	comments CommentStore
	users    UserStore
	logger   *slog.Logger
}

func NewService(ideas IdeaStore, votes VoteStore, comments CommentStore, users UserStore, logger *slog.Logger) *Service {
	return &Service{
		ideas:    ideas,
		votes:    votes,
		comments: comments,
		users:    users,
		logger:   logger,
	}
}

func (s *Service) Ideas(includeData bool) (*Listing, error) {
	count, err := s.ideas.Count()
	if err != nil {
		return nil, err
	}
	listing := &Listing{Count: count}
	if includeData {
		views, err := s.ideas.FindAll(idea.Filters{})
		if err != nil {
			return nil, err
		}
		listing.Data = views
	}
	return listing, nil
}

func (s *Service) Votes(includeData bool) (*Listing, error) {
	count, err := s.votes.Count()
	if err != nil {
		return nil, err
	}
	listing := &Listing{Count: count}
	if includeData {
		votes, err := s.votes.ListAll()
		if err != nil {
			return nil, err
		}
		listing.Data = votes
	}
	return listing, nil
}

func (s *Service) Comments(includeData bool) (*Listing, error) {
	count, err := s.comments.Count()
	if err != nil {
		return nil, err
	}
	listing := &Listing{Count: count}
	if includeData {
		comments, err := s.comments.ListAll()
		if err != nil {
			return nil, err
		}
		listing.Data = comments
	}
	return listing, nil
}

// Users lists sanitized users; password hashes never leave the service.
func (s *Service) Users(includeData bool) (*Listing, error) {
	count, err := s.users.Count()
	if err != nil {
		return nil, err
	}
	listing := &Listing{Count: count}
	if includeData {
		all, err := s.users.List()
		if err != nil {
			return nil, err
		}
		publics := make([]user.Public, 0, len(all))
		for _, u := range all {
			publics = append(publics, u.Public())
		}
		listing.Data = publics
	}
	return listing, nil
}

func (s *Service) TotalCounts() (*TotalCounts, error) {
	ideas, err := s.ideas.Count()
	if err != nil {
		return nil, err
	}
	votes, err := s.votes.Count()
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.Count()
	if err != nil {
		return nil, err
	}
	users, err := s.users.Count()
	if err != nil {
		return nil, err
	}
	return &TotalCounts{
		Ideas:    ideas,
		Votes:    votes,
		Comments: comments,
		Users:    users,
	}, nil
}

func (s *Service) EntityStats() (*EntityStats, error) {
	stats := &EntityStats{}

	var err error
	if stats.Ideas.Total, err = s.ideas.Count(); err != nil {
		return nil, err
	}
	if stats.Ideas.Pending, err = s.ideas.CountByStatus(idea.StatusPending); err != nil {
		return nil, err
	}
	if stats.Ideas.Approved, err = s.ideas.CountByStatus(idea.StatusApproved); err != nil {
		return nil, err
	}
	if stats.Ideas.Rejected, err = s.ideas.CountByStatus(idea.StatusRejected); err != nil {
		return nil, err
	}
	if stats.Ideas.Implemented, err = s.ideas.CountByStatus(idea.StatusImplemented); err != nil {
		return nil, err
	}

	if stats.Votes.Total, err = s.votes.Count(); err != nil {
		return nil, err
	}
	if stats.Votes.UpVotes, err = s.votes.CountByDirection(true); err != nil {
		return nil, err
	}
	if stats.Votes.DownVotes, err = s.votes.CountByDirection(false); err != nil {
		return nil, err
	}

	if stats.Users.Total, err = s.users.Count(); err != nil {
		return nil, err
	}
	if stats.Users.Admins, err = s.users.CountByRole(coreuser.RoleAdmin); err != nil {
		return nil, err
	}

	return stats, nil
}
