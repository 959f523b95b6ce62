package activity

import (
	"encoding/json"
	"time"

	activityDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/activity"
)

// Activity types recorded in the log. Vote removal has no type: toggling
// a vote off is intentionally invisible here.
const (
	TypeIdeaSubmitted   = "idea_submitted"
	TypeIdeaVoted       = "idea_voted"
	TypeIdeaCommented   = "idea_commented"
	TypeIdeaApproved    = "idea_approved"
	TypeIdeaRejected    = "idea_rejected"
	TypeIdeaImplemented = "idea_implemented"
)

func ValidType(t string) bool {
	switch t {
	case TypeIdeaSubmitted, TypeIdeaVoted, TypeIdeaCommented,
		TypeIdeaApproved, TypeIdeaRejected, TypeIdeaImplemented:
		return true
	}
	return false
}

// Metadata is the denormalized snapshot stored with each entry. It
// captures the idea title and actor identity at write time and is never
// updated afterwards, so the feed stays readable after renames or
// deletions. VoteType is set only on idea_voted entries.
type Metadata struct {
	IdeaTitle string `json:"ideaTitle,omitempty"`
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
	VoteType  string `json:"voteType,omitempty"`
}

type Activity struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	IdeaID    *int64    `json:"ideaId,omitempty"`
	Metadata  Metadata  `json:"metadata"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDataModel(m *activityDatamodel.Activity) *Activity {
	a := &Activity{
		ID:        m.ID,
		Type:      m.Type,
		UserID:    m.UserID,
		IdeaID:    m.IdeaID,
		CreatedAt: m.CreatedAt,
	}
	if len(m.Metadata) > 0 {
		// a corrupt snapshot degrades to empty metadata rather than
		// breaking the whole feed
		_ = json.Unmarshal(m.Metadata, &a.Metadata)
	}
	return a
}

func ToDataModel(a *Activity) (*activityDatamodel.Activity, error) {
	raw, err := json.Marshal(a.Metadata)
	if err != nil {
		return nil, err
	}
	return &activityDatamodel.Activity{
		ID:        a.ID,
		Type:      a.Type,
		UserID:    a.UserID,
		IdeaID:    a.IdeaID,
		Metadata:  raw,
		CreatedAt: a.CreatedAt,
	}, nil
}

func FromDataModelSlice(ms []*activityDatamodel.Activity) []*Activity {
	activities := make([]*Activity, 0, len(ms))
	for _, m := range ms {
		activities = append(activities, FromDataModel(m))
	}
	return activities
}
