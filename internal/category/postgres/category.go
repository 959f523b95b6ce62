package postgres

import (
	ideaDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/idea"
	"gorm.io/gorm"
)

// CategoryRepository reads distinct categories off the ideas table.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&ideaDatamodel.Idea{}).
		Distinct("category").
		Where("category IS NOT NULL AND category != ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
