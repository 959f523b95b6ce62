package category_test

import (
	"log/slog"
	"os"
	"sort"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/idea-box/internal/category"
)

func TestCategory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Suite")
}

type mockCategoryRepository struct {
	stored  []string
	loadErr error
}

func (m *mockCategoryRepository) DistinctCategories() ([]string, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.stored, nil
}

var _ = Describe("Category Service", func() {
	var (
		repo    *mockCategoryRepository
		service *category.Service
	)

	BeforeEach(func() {
		repo = &mockCategoryRepository{}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = category.NewService(repo, logger)
	})

	It("returns the sorted seed list on an empty database", func() {
		result, err := service.UniqueCategories()
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(HaveLen(len(category.SeedCategories)))
		Expect(sort.StringsAreSorted(result)).To(BeTrue())
		Expect(result).To(ContainElement("Technology"))
	})

	It("merges stored categories into the list", func() {
		repo.stored = []string{"Remote Work"}

		result, err := service.UniqueCategories()
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(ContainElement("Remote Work"))
		Expect(sort.StringsAreSorted(result)).To(BeTrue())
	})

	It("deduplicates case-insensitively keeping the first spelling", func() {
		repo.stored = []string{"technology", "SAFETY", "Remote Work"}

		result, err := service.UniqueCategories()
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(ContainElement("Technology"))
		Expect(result).NotTo(ContainElement("technology"))
		Expect(result).To(ContainElement("Safety"))
		Expect(result).NotTo(ContainElement("SAFETY"))
		Expect(result).To(HaveLen(len(category.SeedCategories) + 1))
	})

	It("propagates repository errors", func() {
		repo.loadErr = os.ErrClosed
		_, err := service.UniqueCategories()
		Expect(err).To(MatchError(os.ErrClosed))
	})
})
