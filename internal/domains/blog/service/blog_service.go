package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blog-backend/internal/domains/blog"
)

// blogService implements blog.Service
type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

func (s *blogService) Create(ctx context.Context, authorID int, req blog.CreatePostRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post := &blog.Post{
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		ImageURL:  req.ImageURL,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

func (s *blogService) List(ctx context.Context) ([]blog.Post, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) GetByID(ctx context.Context, id int) (*blog.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *blogService) Update(ctx context.Context, id int, req blog.UpdatePostRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = strings.TrimSpace(req.Content)
	if req.ImageURL != nil {
		post.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *blogService) Delete(ctx context.Context, id int) (*blog.Post, error) {
	return s.repo.Delete(ctx, id)
}

// Toggle flips the like state for (postID, userID). The existence check gives
// the 404; the flip itself is one atomic storage operation, so concurrent
// toggles from the same user cannot leave duplicate rows.
func (s *blogService) Toggle(ctx context.Context, postID, userID int) (*blog.ToggleResult, error) {
	exists, err := s.repo.ExistsByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post exists: %w", err)
	}
	if !exists {
		return nil, blog.ErrBlogNotFound
	}

	liked, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	return &blog.ToggleResult{Liked: liked}, nil
}
