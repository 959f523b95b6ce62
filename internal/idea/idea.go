package idea

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	ideaDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/idea"
)

// Idea statuses. Pending is the only initial state; the other three are
// reachable solely through an admin status transition.
const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusImplemented = "implemented"
	StatusRejected    = "rejected"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusImplemented, StatusRejected:
		return true
	}
	return false
}

type Idea struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	ImpactLevel       string    `json:"impactLevel"`
	Hashtags          []string  `json:"hashtags"`
	AttachmentURLs    []string  `json:"attachmentUrls"`
	RequiredResources *string   `json:"requiredResources,omitempty"`
	AnonymousID       string    `json:"anonymousId"`
	UserID            string    `json:"-"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (i *Idea) IsTerminal() bool {
	return i.Status == StatusApproved || i.Status == StatusRejected || i.Status == StatusImplemented
}

// Domain errors
var (
	ErrIdeaNotFound  = errors.New("idea not found")
	ErrInvalidStatus = errors.New("invalid idea status")
)

func FromDataModel(m *ideaDatamodel.Idea) *Idea {
	return &Idea{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		Category:          m.Category,
		ImpactLevel:       m.ImpactLevel,
		Hashtags:          splitHashtags(m.Hashtags),
		AttachmentURLs:    decodeAttachments(m.AttachmentURLs),
		RequiredResources: m.RequiredResources,
		AnonymousID:       m.AnonymousID,
		UserID:            m.UserID,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToDataModel(i *Idea) *ideaDatamodel.Idea {
	return &ideaDatamodel.Idea{
		ID:                i.ID,
		Title:             i.Title,
		Description:       i.Description,
		Category:          i.Category,
		ImpactLevel:       i.ImpactLevel,
		Hashtags:          joinHashtags(i.Hashtags),
		AttachmentURLs:    encodeAttachments(i.AttachmentURLs),
		RequiredResources: i.RequiredResources,
		AnonymousID:       i.AnonymousID,
		UserID:            i.UserID,
		Status:            i.Status,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

// Hashtags are stored comma-joined; attachments as a JSON string array.

func joinHashtags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitHashtags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func encodeAttachments(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return ""
	}
	return string(b)
}

func decodeAttachments(raw string) []string {
	if raw == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return nil
	}
	return urls
}
