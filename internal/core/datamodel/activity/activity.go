package activity

import "time"

// Activity is the persistence model for the append-only activities table.
// Metadata holds the JSON snapshot captured at write time; it is never
// refreshed when the source idea or user changes.
type Activity struct {
	ID        int64     `gorm:"primaryKey"`
	Type      string    `gorm:"column:type;not null;index"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;index"`
	IdeaID    *int64    `gorm:"column:idea_id;index"`
	Metadata  []byte    `gorm:"column:metadata;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (Activity) TableName() string {
	return "activities"
}
