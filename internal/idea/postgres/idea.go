package postgres

import (
	ideaDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/idea"
	userDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/user"
	"github.com/frahmantamala/idea-box/internal/idea"
	"github.com/frahmantamala/idea-box/internal/user"
	"gorm.io/gorm"
)

// IdeaRepository implements the idea.Repository interface using GORM
type IdeaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// countsSelect computes vote and comment counts in one grouped pass over
// the joined rows. DISTINCT is required because the two LEFT JOINs
// multiply rows (votes x comments per idea).
const countsSelect = `ideas.*,
	COUNT(DISTINCT comments.id) AS comment_count,
	COUNT(DISTINCT CASE WHEN votes.is_upvote THEN votes.id END) AS up_votes,
	COUNT(DISTINCT CASE WHEN NOT votes.is_upvote THEN votes.id END) AS down_votes`

func (r *IdeaRepository) Create(i *idea.Idea) error {
	m := idea.ToDataModel(i)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	i.ID = m.ID
	return nil
}

func (r *IdeaRepository) GetByID(id int64) (*idea.Idea, error) {
	var m ideaDatamodel.Idea
	err := r.db.Where("id = ?", id).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, idea.ErrIdeaNotFound
		}
		return nil, err
	}
	return idea.FromDataModel(&m), nil
}

func (r *IdeaRepository) Update(i *idea.Idea) error {
	m := idea.ToDataModel(i)
	result := r.db.Model(&ideaDatamodel.Idea{}).Where("id = ?", i.ID).Updates(map[string]interface{}{
		"title":              m.Title,
		"description":        m.Description,
		"category":           m.Category,
		"impact_level":       m.ImpactLevel,
		"hashtags":           m.Hashtags,
		"required_resources": m.RequiredResources,
		"updated_at":         m.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return idea.ErrIdeaNotFound
	}
	return nil
}

func (r *IdeaRepository) UpdateStatus(id int64, status string) error {
	result := r.db.Model(&ideaDatamodel.Idea{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return idea.ErrIdeaNotFound
	}
	return nil
}

func (r *IdeaRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&ideaDatamodel.Idea{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return idea.ErrIdeaNotFound
	}
	return nil
}

func (r *IdeaRepository) FindAll(filters idea.Filters) ([]*idea.IdeaView, error) {
	query := r.baseQuery()

	if filters.EmployeeID != "" {
		query = query.
			Joins("JOIN users ON users.id = ideas.user_id").
			Where("users.employee_id = ?", filters.EmployeeID)
	}
	if filters.Category != "" {
		query = query.Where("LOWER(ideas.category) = LOWER(?)", filters.Category)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("(LOWER(ideas.title) LIKE LOWER(?) OR LOWER(ideas.description) LIKE LOWER(?))", pattern, pattern)
	}

	switch filters.SortBy {
	case idea.SortPopular:
		query = query.Order("up_votes DESC, ideas.created_at DESC")
	default:
		query = query.Order("ideas.created_at DESC")
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var rows []ideaDatamodel.IdeaWithCounts
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.toViews(rows)
}

func (r *IdeaRepository) FindOne(id int64) (*idea.IdeaView, error) {
	var rows []ideaDatamodel.IdeaWithCounts
	err := r.baseQuery().Where("ideas.id = ?", id).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, idea.ErrIdeaNotFound
	}

	views, err := r.toViews(rows)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *IdeaRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&ideaDatamodel.Idea{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *IdeaRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&ideaDatamodel.Idea{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *IdeaRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&ideaDatamodel.Idea{}).Count(&count).Error
	return count, err
}

func (r *IdeaRepository) baseQuery() *gorm.DB {
	return r.db.Table("ideas").
		Select(countsSelect).
		Joins("LEFT JOIN comments ON comments.idea_id = ideas.id").
		Joins("LEFT JOIN votes ON votes.idea_id = ideas.id").
		Group("ideas.id")
}

// toViews maps scanned rows to domain views and attaches the owning users
// in a single follow-up query.
func (r *IdeaRepository) toViews(rows []ideaDatamodel.IdeaWithCounts) ([]*idea.IdeaView, error) {
	views := make([]*idea.IdeaView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	userIDs := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if !seen[row.UserID] {
			seen[row.UserID] = true
			userIDs = append(userIDs, row.UserID)
		}
	}

	var owners []*userDatamodel.User
	if err := r.db.Where("id IN ?", userIDs).Find(&owners).Error; err != nil {
		return nil, err
	}
	publicByID := make(map[string]*user.Public, len(owners))
	for _, o := range owners {
		pub := user.FromDataModel(o).Public()
		publicByID[o.ID] = &pub
	}

	for _, row := range rows {
		views = append(views, &idea.IdeaView{
			Idea:         *idea.FromDataModel(&row.Idea),
			CommentCount: row.CommentCount,
			UpVotes:      row.UpVotes,
			DownVotes:    row.DownVotes,
			User:         publicByID[row.UserID],
		})
	}
	return views, nil
}
