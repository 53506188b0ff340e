package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blog-backend/internal/domains/comment"
)

// commentService implements comment.Service
type commentService struct {
	repo comment.Repository
}

func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

func (s *commentService) Create(ctx context.Context, postID, authorID int, req comment.CreateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &comment.Comment{
		Content:   strings.TrimSpace(req.Content),
		AuthorID:  authorID,
		PostID:    postID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return c, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int) ([]comment.Comment, error) {
	comments, err := s.repo.FindByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Update(ctx context.Context, id int, req comment.UpdateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, strings.TrimSpace(req.Content))
}

func (s *commentService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
