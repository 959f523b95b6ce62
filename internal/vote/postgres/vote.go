package postgres

import (
	"errors"

	voteDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/vote"
	"github.com/frahmantamala/idea-box/internal/vote"
	"gorm.io/gorm"
)

// VoteRepository implements the vote.Repository interface using GORM
type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) Create(v *vote.Vote) error {
	m := vote.ToDataModel(v)
	if err := r.db.Create(m).Error; err != nil {
		// the composite unique index catches concurrent casts that both
		// passed the existence check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return vote.ErrVoteConflict
		}
		return err
	}
	v.ID = m.ID
	return nil
}

func (r *VoteRepository) UpdateDirection(id int64, isUpvote bool) error {
	result := r.db.Model(&voteDatamodel.Vote{}).Where("id = ?", id).Update("is_upvote", isUpvote)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return vote.ErrVoteNotFound
	}
	return nil
}

func (r *VoteRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&voteDatamodel.Vote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return vote.ErrVoteNotFound
	}
	return nil
}

func (r *VoteRepository) GetByUserAndIdea(userID string, ideaID int64) (*vote.Vote, error) {
	var m voteDatamodel.Vote
	err := r.db.Where("user_id = ? AND idea_id = ?", userID, ideaID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vote.ErrVoteNotFound
		}
		return nil, err
	}
	return vote.FromDataModel(&m), nil
}

func (r *VoteRepository) FindByIdea(ideaID int64) ([]*vote.Vote, error) {
	var ms []*voteDatamodel.Vote
	err := r.db.Where("idea_id = ?", ideaID).Order("id ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return vote.FromDataModelSlice(ms), nil
}

func (r *VoteRepository) CountsByIdea(ideaID int64) (vote.Counts, error) {
	var counts vote.Counts
	err := r.db.Model(&voteDatamodel.Vote{}).
		Select(`COUNT(CASE WHEN is_upvote THEN 1 END) AS up_votes,
			COUNT(CASE WHEN NOT is_upvote THEN 1 END) AS down_votes,
			COUNT(*) AS total`).
		Where("idea_id = ?", ideaID).
		Scan(&counts).Error
	return counts, err
}

func (r *VoteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&voteDatamodel.Vote{}).Count(&count).Error
	return count, err
}

func (r *VoteRepository) CountByDirection(isUpvote bool) (int64, error) {
	var count int64
	err := r.db.Model(&voteDatamodel.Vote{}).Where("is_upvote = ?", isUpvote).Count(&count).Error
	return count, err
}

func (r *VoteRepository) ListAll() ([]*vote.Vote, error) {
	var ms []*voteDatamodel.Vote
	err := r.db.Order("id ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return vote.FromDataModelSlice(ms), nil
}
