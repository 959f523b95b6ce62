package vote

// Vote is the persistence model for the votes table. The composite unique
// index is the backstop for the one-vote-per-(user, idea) invariant when
// concurrent casts race past the application-level existence check.
type Vote struct {
	ID       int64  `gorm:"primaryKey"`
	IsUpvote bool   `gorm:"column:is_upvote;not null"`
	UserID   string `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_votes_user_idea"`
	IdeaID   int64  `gorm:"column:idea_id;not null;uniqueIndex:idx_votes_user_idea"`
}

func (Vote) TableName() string {
	return "votes"
}
