package comment

import "time"

// Comment is the persistence model for the comments table. UserID is
// nullable so comments survive removal of their author.
type Comment struct {
	ID        int64     `gorm:"primaryKey"`
	Text      string    `gorm:"column:text;type:text;not null"`
	UserID    *string   `gorm:"column:user_id;type:uuid"`
	IdeaID    int64     `gorm:"column:idea_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
