package vote

import (
	errors "github.com/frahmantamala/idea-box/internal"
)

// CastVoteDTO is the request payload for casting a vote.
type CastVoteDTO struct {
	IsUpvote *bool `json:"isUpvote"`
}

func (dto CastVoteDTO) Validate() *errors.AppError {
	if dto.IsUpvote == nil {
		return errors.NewValidationFieldError("isUpvote", "isUpvote is required", errors.ErrCodeValidationFailed)
	}
	return nil
}

// CastResult reports what the toggle did. Vote is nil when the cast
// removed an existing vote.
type CastResult struct {
	Outcome string `json:"outcome"`
	Vote    *Vote  `json:"vote,omitempty"`
}

// UserVoteResponse wraps the caller's vote on an idea; Vote is null when
// they have not voted.
type UserVoteResponse struct {
	Vote *Vote `json:"vote"`
}
