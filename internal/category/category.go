package category

import (
	"log/slog"
	"sort"
	"strings"
)

// SeedCategories are always offered, even on an empty database.
var SeedCategories = []string{
	"Technology",
	"Process Improvement",
	"Customer Experience",
	"Cost Reduction",
	"Innovation",
	"Sustainability",
	"Safety",
	"Training & Development",
	"Communication",
}

// Repository reports the distinct non-empty categories in use by ideas.
type Repository interface {
	DistinctCategories() ([]string, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// UniqueCategories merges the seed list with categories found on stored
// ideas, deduplicates case-insensitively keeping the first spelling seen,
// and sorts alphabetically.
func (s *Service) UniqueCategories() ([]string, error) {
	stored, err := s.repo.DistinctCategories()
	if err != nil {
		s.logger.Error("failed to load categories", "error", err)
		return nil, err
	}

	merged := make([]string, 0, len(SeedCategories)+len(stored))
	seen := make(map[string]bool, len(SeedCategories)+len(stored))
	for _, c := range append(append([]string{}, SeedCategories...), stored...) {
		key := strings.ToLower(c)
		if !seen[key] {
			seen[key] = true
			merged = append(merged, c)
		}
	}

	sort.Strings(merged)
	return merged, nil
}
