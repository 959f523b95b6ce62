package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeIdeaSubmitted     = "idea.submitted"
	EventTypeIdeaVoted         = "idea.voted"
	EventTypeIdeaStatusChanged = "idea.status_changed"
)

type IdeaSubmittedEvent struct {
	BaseEvent
	IdeaID int64  `json:"idea_id"`
	Title  string `json:"title"`
	UserID string `json:"user_id"`
}

func NewIdeaSubmittedEvent(ideaID int64, title, userID string) *IdeaSubmittedEvent {
	return &IdeaSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeIdeaSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"idea_id": ideaID,
				"title":   title,
				"user_id": userID,
			},
		},
		IdeaID: ideaID,
		Title:  title,
		UserID: userID,
	}
}

type IdeaVotedEvent struct {
	BaseEvent
	IdeaID   int64  `json:"idea_id"`
	UserID   string `json:"user_id"`
	IsUpvote bool   `json:"is_upvote"`
}

func NewIdeaVotedEvent(ideaID int64, userID string, isUpvote bool) *IdeaVotedEvent {
	return &IdeaVotedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeIdeaVoted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"idea_id":   ideaID,
				"user_id":   userID,
				"is_upvote": isUpvote,
			},
		},
		IdeaID:   ideaID,
		UserID:   userID,
		IsUpvote: isUpvote,
	}
}

type IdeaStatusChangedEvent struct {
	BaseEvent
	IdeaID int64  `json:"idea_id"`
	Status string `json:"status"`
	UserID string `json:"user_id"`
}

func NewIdeaStatusChangedEvent(ideaID int64, status, userID string) *IdeaStatusChangedEvent {
	return &IdeaStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeIdeaStatusChanged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"idea_id": ideaID,
				"status":  status,
				"user_id": userID,
			},
		},
		IdeaID: ideaID,
		Status: status,
		UserID: userID,
	}
}
