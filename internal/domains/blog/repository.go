package blog

import "context"

// Repository defines the contract for the blog data access layer.
type Repository interface {
	// Create inserts the post and fills in its id.
	Create(ctx context.Context, p *Post) error

	// FindAll returns every post, newest first.
	FindAll(ctx context.Context) ([]Post, error)

	// FindByID returns the post or ErrBlogNotFound.
	FindByID(ctx context.Context, id int) (*Post, error)

	// FindAuthorID fetches only the author id projection of a post.
	// found = false when the post does not exist; err only on store failure.
	FindAuthorID(ctx context.Context, id int) (authorID int, found bool, err error)

	// ExistsByID reports whether the post exists.
	ExistsByID(ctx context.Context, id int) (bool, error)

	// Update persists title/content/image changes.
	// Returns ErrBlogNotFound when the post no longer exists.
	Update(ctx context.Context, p *Post) error

	// Delete removes the post and returns the deleted row,
	// or ErrBlogNotFound.
	Delete(ctx context.Context, id int) (*Post, error)

	// ToggleLike flips the like state for the (blogID, likerID) pair in a
	// single atomic statement. Returns liked = true when a row was inserted,
	// false when the existing row was deleted.
	ToggleLike(ctx context.Context, blogID, likerID int) (liked bool, err error)
}
