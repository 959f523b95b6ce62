package dashboard

import (
	"log/slog"
	"math"

	"github.com/frahmantamala/idea-box/internal/idea"
)

// IdeaFinder supplies the aggregated idea views the metrics are computed
// from; implemented by the idea service.
type IdeaFinder interface {
	FindByUserID(userID string) ([]*idea.IdeaView, error)
	FindAll(filters idea.Filters) ([]*idea.IdeaView, error)
}

// Config carries the tunables: the submission goal shown on the progress
// card and the size of the popularity window for topIdeasPercentage.
type Config struct {
	Goal           int
	TopIdeasWindow int
}

type Service struct {
	ideas  IdeaFinder
	cfg    Config
	logger *slog.Logger
}

func NewService(ideas IdeaFinder, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		ideas:  ideas,
		cfg:    cfg,
		logger: logger,
	}
}

// Progress reports how many ideas the user has submitted against the goal.
func (s *Service) Progress(userID string) (*Progress, error) {
	mine, err := s.ideas.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return &Progress{
		Submitted: int64(len(mine)),
		Goal:      s.cfg.Goal,
	}, nil
}

// Metrics computes the four personal dashboard figures from the user's
// ideas and the global popularity ranking. A user with no ideas gets all
// zeroes.
func (s *Service) Metrics(userID string) (*Metrics, error) {
	mine, err := s.ideas.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	m := &Metrics{}
	if len(mine) == 0 {
		return m, nil
	}

	var engaged int64
	for _, v := range mine {
		m.CommunityPoints += v.UpVotes
		if v.UpVotes > 0 || v.DownVotes > 0 || v.CommentCount > 0 {
			engaged++
		}
		if v.Status == idea.StatusImplemented {
			m.IdeasImplemented++
		}
	}
	m.EngagementRate = roundPercent(float64(engaged) / float64(len(mine)) * 100)

	inTop, err := s.countInTopWindow(userID)
	if err != nil {
		return nil, err
	}
	denominator := len(mine)
	if denominator > s.cfg.TopIdeasWindow {
		denominator = s.cfg.TopIdeasWindow
	}
	m.TopIdeasPercentage = roundPercent(float64(inTop) / float64(denominator) * 100)

	return m, nil
}

// countInTopWindow counts the user's ideas inside the global top-N by
// upvotes.
func (s *Service) countInTopWindow(userID string) (int, error) {
	top, err := s.ideas.FindAll(idea.Filters{
		SortBy: idea.SortPopular,
		Limit:  s.cfg.TopIdeasWindow,
	})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, v := range top {
		if v.UserID == userID {
			count++
		}
	}
	return count, nil
}

func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
