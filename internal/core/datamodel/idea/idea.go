package idea

import "time"

// Idea is the persistence model for the ideas table. Hashtags are stored
// comma-joined and attachment urls as a JSON text array; the domain layer
// converts both to slices.
type Idea struct {
	ID                int64     `gorm:"primaryKey"`
	Title             string    `gorm:"column:title;not null"`
	Description       string    `gorm:"column:description;type:text;not null"`
	Category          string    `gorm:"column:category;not null"`
	ImpactLevel       string    `gorm:"column:impact_level;not null"`
	Hashtags          string    `gorm:"column:hashtags"`
	AttachmentURLs    string    `gorm:"column:attachment_urls"`
	RequiredResources *string   `gorm:"column:required_resources"`
	AnonymousID       string    `gorm:"column:anonymous_id;not null"`
	UserID            string    `gorm:"column:user_id;type:uuid;not null"`
	Status            string    `gorm:"column:status;default:pending"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (Idea) TableName() string {
	return "ideas"
}

// IdeaWithCounts is the scan target for the aggregated listing query:
// one idea row augmented with grouped vote and comment counts.
type IdeaWithCounts struct {
	Idea
	CommentCount int64 `gorm:"column:comment_count"`
	UpVotes      int64 `gorm:"column:up_votes"`
	DownVotes    int64 `gorm:"column:down_votes"`
}
