package blog

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const minTextLength = 3

// requiredText enforces the blog content rules: required after trim, then a
// minimum length. Both violations carry the original messages.
func requiredText(value, label string) error {
	trimmed := strings.TrimSpace(value)
	return validation.Validate(trimmed,
		validation.Required.Error(fmt.Sprintf("%s is required.", label)),
		validation.Length(minTextLength, 0).Error(
			fmt.Sprintf("%s must have %d character at least.", label, minTextLength)),
	)
}

type CreatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url,omitempty"`
}

// Validate accumulates every violation, not just the first.
func (r CreatePostRequest) Validate() error {
	return validation.Errors{
		"title":   requiredText(r.Title, "Title"),
		"content": requiredText(r.Content, "Content"),
	}.Filter()
}

type UpdatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.Errors{
		"title":   requiredText(r.Title, "Title"),
		"content": requiredText(r.Content, "Content"),
	}.Filter()
}

// ToggleResult reports which way a reaction toggle went.
type ToggleResult struct {
	Liked bool `json:"liked"`
}

// Message is the user-facing outcome of the toggle.
func (t ToggleResult) Message() string {
	if t.Liked {
		return "like successfully"
	}
	return "dislike successfully"
}
