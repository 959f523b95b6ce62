package user

import (
	"log/slog"
)

// Repository defines the data access methods for users
type Repository interface {
	GetByID(id string) (*User, error)
	GetByEmployeeID(employeeID string) (*User, error)
	List() ([]*User, error)
	Count() (int64, error)
	CountByRole(role string) (int64, error)
}

// IdeaCounter reports how many ideas a user has submitted; implemented
// by the idea repository.
type IdeaCounter interface {
	CountByUser(userID string) (int64, error)
}

type Service struct {
	repo   Repository
	ideas  IdeaCounter
	logger *slog.Logger
}

func NewService(repo Repository, ideas IdeaCounter, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		ideas:  ideas,
		logger: logger,
	}
}

// GetByID returns the user without credentials.
func (s *Service) GetByID(id string) (*Public, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", id)
		return nil, err
	}
	pub := u.Public()
	return &pub, nil
}

// EmployeeIDForUser resolves the employee id for listing filters.
func (s *Service) EmployeeIDForUser(userID string) (string, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return "", err
	}
	return u.EmployeeID, nil
}

// ActivitySummary counts the ideas the user has submitted.
func (s *Service) ActivitySummary(userID string) (*ActivitySummaryResponse, error) {
	if _, err := s.repo.GetByID(userID); err != nil {
		return nil, err
	}

	submitted, err := s.ideas.CountByUser(userID)
	if err != nil {
		s.logger.Error("failed to count user ideas", "error", err, "user_id", userID)
		return nil, err
	}

	return &ActivitySummaryResponse{IdeasSubmitted: submitted}, nil
}
