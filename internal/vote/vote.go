package vote

import (
	"errors"

	voteDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/vote"
)

// Outcomes of casting a vote. A cast against an existing same-direction
// vote removes it; against an opposite vote it flips in place.
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeRemoved = "removed"
)

type Vote struct {
	ID       int64  `json:"id"`
	IsUpvote bool   `json:"isUpvote"`
	UserID   string `json:"-"`
	IdeaID   int64  `json:"ideaId"`
}

// Counts is the per-idea tally exposed by the count endpoint. The keys
// are lowercase, unlike the camelCase counts embedded in idea listings.
type Counts struct {
	UpVotes   int64 `json:"upvotes"`
	DownVotes int64 `json:"downvotes"`
	Total     int64 `json:"total"`
}

var (
	ErrVoteNotFound = errors.New("vote not found")
	ErrVoteConflict = errors.New("vote already exists")
)

func FromDataModel(m *voteDatamodel.Vote) *Vote {
	return &Vote{
		ID:       m.ID,
		IsUpvote: m.IsUpvote,
		UserID:   m.UserID,
		IdeaID:   m.IdeaID,
	}
}

func ToDataModel(v *Vote) *voteDatamodel.Vote {
	return &voteDatamodel.Vote{
		ID:       v.ID,
		IsUpvote: v.IsUpvote,
		UserID:   v.UserID,
		IdeaID:   v.IdeaID,
	}
}

func FromDataModelSlice(ms []*voteDatamodel.Vote) []*Vote {
	votes := make([]*Vote, 0, len(ms))
	for _, m := range ms {
		votes = append(votes, FromDataModel(m))
	}
	return votes
}
