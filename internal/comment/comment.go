package comment

import (
	"errors"
	"time"

	commentDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/comment"
	"github.com/frahmantamala/idea-box/internal/user"
)

type Comment struct {
	ID        int64        `json:"id"`
	Text      string       `json:"text"`
	UserID    *string      `json:"-"`
	IdeaID    int64        `json:"ideaId"`
	CreatedAt time.Time    `json:"createdAt"`
	User      *user.Public `json:"user,omitempty"`
}

var ErrCommentNotFound = errors.New("comment not found")

func FromDataModel(m *commentDatamodel.Comment) *Comment {
	return &Comment{
		ID:        m.ID,
		Text:      m.Text,
		UserID:    m.UserID,
		IdeaID:    m.IdeaID,
		CreatedAt: m.CreatedAt,
	}
}

func ToDataModel(c *Comment) *commentDatamodel.Comment {
	return &commentDatamodel.Comment{
		ID:        c.ID,
		Text:      c.Text,
		UserID:    c.UserID,
		IdeaID:    c.IdeaID,
		CreatedAt: c.CreatedAt,
	}
}

func FromDataModelSlice(ms []*commentDatamodel.Comment) []*Comment {
	comments := make([]*Comment, 0, len(ms))
	for _, m := range ms {
		comments = append(comments, FromDataModel(m))
	}
	return comments
}
