package postgres

import (
	"github.com/frahmantamala/idea-box/internal/comment"
	commentDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/comment"
	userDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/user"
	"github.com/frahmantamala/idea-box/internal/user"
	"gorm.io/gorm"
)

// CommentRepository implements the comment.Repository interface using GORM
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(c *comment.Comment) error {
	m := comment.ToDataModel(c)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

// FindByIdea lists comments newest-first with their authors attached.
// Authorless comments (deleted users) keep a nil User.
func (r *CommentRepository) FindByIdea(ideaID int64) ([]*comment.Comment, error) {
	var ms []*commentDatamodel.Comment
	err := r.db.Where("idea_id = ?", ideaID).Order("created_at DESC").Find(&ms).Error
	if err != nil {
		return nil, err
	}

	comments := comment.FromDataModelSlice(ms)
	if err := r.attachAuthors(comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) CountByIdea(ideaID int64) (int64, error) {
	var count int64
	err := r.db.Model(&commentDatamodel.Comment{}).Where("idea_id = ?", ideaID).Count(&count).Error
	return count, err
}

func (r *CommentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&commentDatamodel.Comment{}).Count(&count).Error
	return count, err
}

func (r *CommentRepository) ListAll() ([]*comment.Comment, error) {
	var ms []*commentDatamodel.Comment
	err := r.db.Order("created_at DESC").Find(&ms).Error
	if err != nil {
		return nil, err
	}

	comments := comment.FromDataModelSlice(ms)
	if err := r.attachAuthors(comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) attachAuthors(comments []*comment.Comment) error {
	ids := make([]string, 0, len(comments))
	seen := make(map[string]bool, len(comments))
	for _, c := range comments {
		if c.UserID != nil && !seen[*c.UserID] {
			seen[*c.UserID] = true
			ids = append(ids, *c.UserID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var authors []*userDatamodel.User
	if err := r.db.Where("id IN ?", ids).Find(&authors).Error; err != nil {
		return err
	}
	publicByID := make(map[string]*user.Public, len(authors))
	for _, a := range authors {
		pub := user.FromDataModel(a).Public()
		publicByID[a.ID] = &pub
	}

	for _, c := range comments {
		if c.UserID != nil {
			c.User = publicByID[*c.UserID]
		}
	}
	return nil
}
