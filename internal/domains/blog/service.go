package blog

import "context"

// Service defines the business logic layer contract.
type Service interface {
	Create(ctx context.Context, authorID int, req CreatePostRequest) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int) (*Post, error)
	Update(ctx context.Context, id int, req UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, id int) (*Post, error)

	// Toggle flips the reaction of userID on postID.
	// Returns ErrBlogNotFound when the post does not exist.
	Toggle(ctx context.Context, postID, userID int) (*ToggleResult, error)
}
