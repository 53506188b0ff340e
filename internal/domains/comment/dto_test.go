package comment

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequestValidate(t *testing.T) {
	assert.NoError(t, CreateCommentRequest{Content: "nice post"}.Validate())

	for _, empty := range []string{"", "   ", "\t\n"} {
		err := CreateCommentRequest{Content: empty}.Validate()

		var errs validation.Errors
		require.True(t, errors.As(err, &errs))
		assert.Equal(t, "Comment is required.", errs["content"].Error())
	}
}

func TestUpdateCommentRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateCommentRequest{Content: "edited"}.Validate())

	err := UpdateCommentRequest{}.Validate()

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, "Comment is required.", errs["content"].Error())
}
