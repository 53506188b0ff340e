package comment

import "context"

// Repository defines the contract for the comment data access layer.
type Repository interface {
	// Create inserts the comment and fills in its id.
	Create(ctx context.Context, c *Comment) error

	// FindByPost returns a post's comments, oldest first.
	FindByPost(ctx context.Context, postID int) ([]Comment, error)

	// FindAuthorID fetches only the author id projection of a comment.
	// found = false when the comment does not exist; err only on store failure.
	FindAuthorID(ctx context.Context, id int) (authorID int, found bool, err error)

	// Update persists a content change and returns the updated row.
	// Returns ErrCommentNotFound when the comment no longer exists.
	Update(ctx context.Context, id int, content string) (*Comment, error)

	// Delete removes the comment, or returns ErrCommentNotFound.
	Delete(ctx context.Context, id int) error
}
