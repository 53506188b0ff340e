package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/cache"
)

const (
	userCacheTTL = 10 * time.Minute

	// unique_violation
	pgUniqueViolation = "23505"
)

// postgresRepository is the concrete implementation of user.Repository.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository returns the repository behind its interface so
// callers depend on the abstraction, not the implementation.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func userCacheKey(id int) string {
	return fmt.Sprintf("user:%d", id)
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (int, error) {
	query := `
		INSERT INTO users (username, email, password, role, picture_url, gender, bio, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		u.Username,
		u.Email,
		u.Password,
		u.Role,
		u.PictureURL,
		u.Gender,
		u.Bio,
		u.CreatedAt,
	).Scan(&u.ID)

	if err != nil {
		// Map the unique constraint on email to the domain error so a lost
		// race between two registrations still reports a conflict.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, user.ErrEmailAlreadyInUse
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return u.ID, nil
}

// FindByID reads through the cache (cache-aside). A cache failure falls back
// to the database; it never fails the read.
func (r *postgresRepository) FindByID(ctx context.Context, id int) (*user.User, error) {
	key := userCacheKey(id)

	var cached user.User
	found, err := r.cache.Get(ctx, key, &cached)
	if err == nil && found {
		return &cached, nil
	}

	query := `
		SELECT id, username, email, password, role, picture_url, gender, bio, created_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.Role,
		&u.PictureURL,
		&u.Gender,
		&u.Bio,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user by id: %w", err)
	}

	_ = r.cache.Set(ctx, key, &u, userCacheTTL)

	return &u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, username, email, password, role, picture_url, gender, bio, created_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.Role,
		&u.PictureURL,
		&u.Gender,
		&u.Bio,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]user.User, error) {
	query := `
		SELECT id, username, email, password, role, picture_url, gender, bio, created_at
		FROM users
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.Password,
			&u.Role,
			&u.PictureURL,
			&u.Gender,
			&u.Bio,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET username = $1, gender = $2, bio = $3
		WHERE id = $4
	`

	tag, err := r.pool.Exec(ctx, query, u.Username, u.Gender, u.Bio, u.ID)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	_ = r.cache.Delete(ctx, userCacheKey(u.ID))

	return nil
}

func (r *postgresRepository) UpdatePictureURL(ctx context.Context, id int, url string) error {
	query := `UPDATE users SET picture_url = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, url, id)
	if err != nil {
		return fmt.Errorf("update picture url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	_ = r.cache.Delete(ctx, userCacheKey(id))

	return nil
}
