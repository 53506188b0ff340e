package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/blog"
)

// postgresRepository is the concrete implementation of blog.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, p *blog.Post) error {
	query := `
		INSERT INTO posts (title, content, image_url, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		p.Title,
		p.Content,
		p.ImageURL,
		p.AuthorID,
		p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]blog.Post, error) {
	query := `
		SELECT id, title, content, image_url, author_id, created_at
		FROM posts
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer rows.Close()

	var posts []blog.Post
	for rows.Next() {
		var p blog.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.ImageURL, &p.AuthorID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int) (*blog.Post, error) {
	query := `
		SELECT id, title, content, image_url, author_id, created_at
		FROM posts
		WHERE id = $1
	`

	var p blog.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.ImageURL, &p.AuthorID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, fmt.Errorf("select post by id: %w", err)
	}

	return &p, nil
}

// FindAuthorID fetches only the author id projection, for the ownership guard.
func (r *postgresRepository) FindAuthorID(ctx context.Context, id int) (int, bool, error) {
	query := `SELECT author_id FROM posts WHERE id = $1`

	var authorID int
	err := r.pool.QueryRow(ctx, query, id).Scan(&authorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select post author: %w", err)
	}

	return authorID, true, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check post exists: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *blog.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, image_url = $3
		WHERE id = $4
	`

	tag, err := r.pool.Exec(ctx, query, p.Title, p.Content, p.ImageURL, p.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) (*blog.Post, error) {
	query := `
		DELETE FROM posts
		WHERE id = $1
		RETURNING id, title, content, image_url, author_id, created_at
	`

	var p blog.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.ImageURL, &p.AuthorID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, fmt.Errorf("delete post: %w", err)
	}

	return &p, nil
}

// ToggleLike flips the like state in one statement. The delete and the
// conditional insert run atomically, and the unique constraint on
// (blog_id, liker_id) guarantees at most one row per pair even when toggles
// race across server instances.
func (r *postgresRepository) ToggleLike(ctx context.Context, blogID, likerID int) (bool, error) {
	query := `
		WITH deleted AS (
			DELETE FROM likes
			WHERE blog_id = $1 AND liker_id = $2
			RETURNING 1
		), inserted AS (
			INSERT INTO likes (blog_id, liker_id)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM deleted)
			ON CONFLICT (blog_id, liker_id) DO NOTHING
			RETURNING 1
		)
		SELECT EXISTS(SELECT 1 FROM inserted)
	`

	var liked bool
	if err := r.pool.QueryRow(ctx, query, blogID, likerID).Scan(&liked); err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	return liked, nil
}
