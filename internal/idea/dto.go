package idea

import (
	errors "github.com/frahmantamala/idea-box/internal"
	"github.com/frahmantamala/idea-box/internal/core/common/validation"
	"github.com/frahmantamala/idea-box/internal/user"
)

// Impact levels accepted on submission.
var ImpactLevels = []string{"low", "medium", "high"}

// CreateIdeaDTO is the request payload for submitting an idea.
// Attachments carry opaque filenames only; file bytes are handled by the
// upload layer before the service sees them.
type CreateIdeaDTO struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	ImpactLevel       string   `json:"impactLevel"`
	Hashtags          []string `json:"hashtags,omitempty"`
	Attachments       []string `json:"attachments,omitempty"`
	RequiredResources *string  `json:"requiredResources,omitempty"`
}

func (dto CreateIdeaDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("title", dto.Title).Required().MaxLength(200, errors.ErrCodeInvalidTitle)
	v.Field("description", dto.Description).Required().MaxLength(5000, errors.ErrCodeInvalidDescription)
	v.Field("category", dto.Category).Required()
	v.Field("impactLevel", dto.ImpactLevel).Required().OneOf(ImpactLevels, errors.ErrCodeValidationFailed)
	return v.Validate()
}

// UpdateIdeaDTO carries optional fields for an in-place edit. Status is
// deliberately absent: it only moves through the transition endpoints.
type UpdateIdeaDTO struct {
	Title             *string  `json:"title,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Category          *string  `json:"category,omitempty"`
	ImpactLevel       *string  `json:"impactLevel,omitempty"`
	Hashtags          []string `json:"hashtags,omitempty"`
	RequiredResources *string  `json:"requiredResources,omitempty"`
}

func (dto UpdateIdeaDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Title != nil {
		v.Field("title", *dto.Title).Required().MaxLength(200, errors.ErrCodeInvalidTitle)
	}
	if dto.Description != nil {
		v.Field("description", *dto.Description).Required().MaxLength(5000, errors.ErrCodeInvalidDescription)
	}
	if dto.ImpactLevel != nil {
		v.Field("impactLevel", *dto.ImpactLevel).OneOf(ImpactLevels, errors.ErrCodeValidationFailed)
	}
	return v.Validate()
}

// SortBy values for listings.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
)

// Filters are AND-combined; zero values mean "not set".
type Filters struct {
	EmployeeID string
	Category   string
	Search     string
	SortBy     string
	Offset     int
	Limit      int
}

// IdeaView augments a stored idea with live-computed vote and comment
// counts plus the owner stripped of credentials.
type IdeaView struct {
	Idea
	CommentCount int64        `json:"commentCount"`
	UpVotes      int64        `json:"upVotes"`
	DownVotes    int64        `json:"downVotes"`
	User         *user.Public `json:"user,omitempty"`
}
