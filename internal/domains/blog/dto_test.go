package blog

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()

	var errs validation.Errors
	require.True(t, errors.As(err, &errs), "expected validation.Errors, got %T", err)

	out := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		out[field] = fieldErr.Error()
	}
	return out
}

func TestCreatePostRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreatePostRequest{Title: "First post", Content: "Some real content"}
		assert.NoError(t, req.Validate())
	})

	t.Run("both empty reports both", func(t *testing.T) {
		msgs := fieldMessages(t, CreatePostRequest{}.Validate())
		assert.Equal(t, "Title is required.", msgs["title"])
		assert.Equal(t, "Content is required.", msgs["content"])
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		msgs := fieldMessages(t, CreatePostRequest{Title: "  \t ", Content: "ok content"}.Validate())
		assert.Equal(t, "Title is required.", msgs["title"])
		assert.NotContains(t, msgs, "content")
	})

	t.Run("too short", func(t *testing.T) {
		msgs := fieldMessages(t, CreatePostRequest{Title: "ab", Content: "xy"}.Validate())
		assert.Equal(t, "Title must have 3 character at least.", msgs["title"])
		assert.Equal(t, "Content must have 3 character at least.", msgs["content"])
	})

	t.Run("exactly minimum length", func(t *testing.T) {
		assert.NoError(t, CreatePostRequest{Title: "abc", Content: "xyz"}.Validate())
	})
}

func TestUpdatePostRequestValidate(t *testing.T) {
	assert.NoError(t, UpdatePostRequest{Title: "New title", Content: "New content"}.Validate())

	msgs := fieldMessages(t, UpdatePostRequest{Title: "ab"}.Validate())
	assert.Equal(t, "Title must have 3 character at least.", msgs["title"])
	assert.Equal(t, "Content is required.", msgs["content"])
}

func TestToggleResultMessage(t *testing.T) {
	assert.Equal(t, "like successfully", ToggleResult{Liked: true}.Message())
	assert.Equal(t, "dislike successfully", ToggleResult{Liked: false}.Message())
}
