package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/password"
)

// ObjectStorage is the blob-store capability the profile picture flow needs:
// store a blob, get a public URL back.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ImageProcessor prepares uploaded picture bytes for storage: validate the
// format and bound the dimensions.
type ImageProcessor interface {
	Process(data []byte) ([]byte, string, error)
}

// userService implements user.Service
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
	storage    ObjectStorage
	images     ImageProcessor
}

// NewUserService creates the service instance with its dependencies injected.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager, storage ObjectStorage, images ImageProcessor) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		storage:    storage,
		images:     images,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Register creates a new account. Email uniqueness is checked before the
// insert; the insert itself still maps a unique violation to the same error,
// so concurrent duplicate registrations cannot both succeed.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyInUse
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var bio *string
	if req.Bio != "" {
		bio = &req.Bio
	}

	newUser := &user.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     email,
		Password:  hashed,
		Role:      user.RoleUser,
		Gender:    user.NormalizeGender(req.Gender), // invalid values stored as absent
		Bio:       bio,
		CreatedAt: time.Now(),
	}

	if _, err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return &user.RegisterResponse{
		Username: newUser.Username,
		Email:    newUser.Email,
		Role:     newUser.Role,
	}, nil
}

// Login verifies the credentials and issues a 6-hour token.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrWrongEmail
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if !password.Verify(req.Password, u.Password) {
		return nil, user.ErrWrongPassword
	}

	token, err := s.jwtManager.GenerateToken(u.ID, u.Username, u.Email, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.LoginResponse{
		Token: token,
		User:  u.ToDTO(),
	}, nil
}

// ========================================
// PROFILES
// ========================================

func (s *userService) List(ctx context.Context) ([]user.UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	dtos := make([]user.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDTO())
	}
	return dtos, nil
}

func (s *userService) GetByID(ctx context.Context, id int) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int, req user.UpdateProfileRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if username := strings.TrimSpace(req.Username); username != "" {
		u.Username = username
	}
	if req.Gender != "" {
		u.Gender = user.NormalizeGender(req.Gender)
	}
	if req.Bio != "" {
		u.Bio = &req.Bio
	}

	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

// UpdatePicture validates and normalizes the image, stores the blob
// externally, and saves the public URL on the owning record.
func (s *userService) UpdatePicture(ctx context.Context, id int, data []byte) (string, error) {
	processed, contentType, err := s.images.Process(data)
	if err != nil {
		return "", user.ErrInvalidPicture
	}

	key := path.Join("profiles", fmt.Sprintf("%d_%s%s", id, uuid.NewString(), extensionFor(contentType)))

	url, err := s.storage.Upload(ctx, key, processed, contentType)
	if err != nil {
		return "", fmt.Errorf("upload picture: %w", err)
	}

	if err := s.repo.UpdatePictureURL(ctx, id, url); err != nil {
		return "", err
	}

	return url, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
