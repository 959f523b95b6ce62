package comment

import (
	errors "github.com/frahmantamala/idea-box/internal"
	"github.com/frahmantamala/idea-box/internal/core/common/validation"
)

// CreateCommentDTO is the request payload for commenting on an idea.
type CreateCommentDTO struct {
	Text string `json:"text"`
}

func (dto CreateCommentDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("text", dto.Text).Required().MaxLength(2000, errors.ErrCodeValidationFailed)
	return v.Validate()
}
