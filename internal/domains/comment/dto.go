package comment

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.Errors{
		"content": validation.Validate(strings.TrimSpace(r.Content),
			validation.Required.Error("Comment is required."),
		),
	}.Filter()
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.Errors{
		"content": validation.Validate(strings.TrimSpace(r.Content),
			validation.Required.Error("Comment is required."),
		),
	}.Filter()
}
