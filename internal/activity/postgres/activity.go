package postgres

import (
	"github.com/frahmantamala/idea-box/internal/activity"
	activityDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/activity"
	"gorm.io/gorm"
)

// ActivityRepository implements the activity.Repository interface using GORM
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(a *activity.Activity) error {
	m, err := activity.ToDataModel(a)
	if err != nil {
		return err
	}
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	a.ID = m.ID
	return nil
}

func (r *ActivityRepository) Recent(limit int) ([]*activity.Activity, error) {
	return r.list(r.db, limit)
}

func (r *ActivityRepository) ByUser(userID string, limit int) ([]*activity.Activity, error) {
	return r.list(r.db.Where("user_id = ?", userID), limit)
}

func (r *ActivityRepository) ByIdea(ideaID int64, limit int) ([]*activity.Activity, error) {
	return r.list(r.db.Where("idea_id = ?", ideaID), limit)
}

func (r *ActivityRepository) ByType(activityType string, limit int) ([]*activity.Activity, error) {
	return r.list(r.db.Where("type = ?", activityType), limit)
}

// list applies the shared newest-first ordering. The id tiebreak keeps
// entries written within the same timestamp in insertion order.
func (r *ActivityRepository) list(q *gorm.DB, limit int) ([]*activity.Activity, error) {
	var ms []*activityDatamodel.Activity
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return activity.FromDataModelSlice(ms), nil
}
