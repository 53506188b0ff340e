package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment"
)

// postgresRepository is the concrete implementation of comment.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (content, author_id, post_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		c.Content,
		c.AuthorID,
		c.PostID,
		c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByPost(ctx context.Context, postID int) ([]comment.Comment, error) {
	query := `
		SELECT id, content, author_id, post_id, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	var comments []comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.AuthorID, &c.PostID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

// FindAuthorID fetches only the author id projection, for the ownership guard.
func (r *postgresRepository) FindAuthorID(ctx context.Context, id int) (int, bool, error) {
	query := `SELECT author_id FROM comments WHERE id = $1`

	var authorID int
	err := r.pool.QueryRow(ctx, query, id).Scan(&authorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select comment author: %w", err)
	}

	return authorID, true, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int, content string) (*comment.Comment, error) {
	query := `
		UPDATE comments
		SET content = $1
		WHERE id = $2
		RETURNING id, content, author_id, post_id, created_at
	`

	var c comment.Comment
	err := r.pool.QueryRow(ctx, query, content, id).Scan(
		&c.ID, &c.Content, &c.AuthorID, &c.PostID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM comments WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}
