package comment

import "context"

// Service defines the business logic layer contract.
type Service interface {
	Create(ctx context.Context, postID, authorID int, req CreateCommentRequest) (*Comment, error)
	ListByPost(ctx context.Context, postID int) ([]Comment, error)
	Update(ctx context.Context, id int, req UpdateCommentRequest) (*Comment, error)
	Delete(ctx context.Context, id int) error
}
