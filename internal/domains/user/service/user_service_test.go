package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/password"
)

// fakeUserRepo implements user.Repository with overridable behavior per test.
type fakeUserRepo struct {
	createFn        func(ctx context.Context, u *user.User) (int, error)
	findByIDFn      func(ctx context.Context, id int) (*user.User, error)
	findByEmailFn   func(ctx context.Context, email string) (*user.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	listFn          func(ctx context.Context) ([]user.User, error)
	updateProfileFn func(ctx context.Context, u *user.User) error
	updatePictureFn func(ctx context.Context, id int, url string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (int, error) {
	return f.createFn(ctx, u)
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id int) (*user.User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.existsByEmailFn(ctx, email)
}
func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return f.listFn(ctx) }
func (f *fakeUserRepo) UpdateProfile(ctx context.Context, u *user.User) error {
	return f.updateProfileFn(ctx, u)
}
func (f *fakeUserRepo) UpdatePictureURL(ctx context.Context, id int, url string) error {
	return f.updatePictureFn(ctx, id, url)
}

// fakeStorage records the last Upload call and answers with a canned URL.
type fakeStorage struct {
	key         string
	data        []byte
	contentType string
	url         string
	err         error
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, contentType string) (string, error) {
	f.key, f.data, f.contentType = key, data, contentType
	return f.url, f.err
}

type fakeProcessor struct {
	out         []byte
	contentType string
	err         error
}

func (f *fakeProcessor) Process(data []byte) ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.out, f.contentType, nil
}

func newService(repo *fakeUserRepo, storage *fakeStorage, images *fakeProcessor) user.Service {
	if storage == nil {
		storage = &fakeStorage{}
	}
	if images == nil {
		images = &fakeProcessor{}
	}
	return NewUserService(repo, jwt.NewManager("test-secret"), storage, images)
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepo{
			existsByEmailFn: func(_ context.Context, email string) (bool, error) { return false, nil },
			createFn: func(_ context.Context, u *user.User) (int, error) {
				created = u
				return 1, nil
			},
		}

		res, err := newService(repo, nil, nil).Register(context.Background(), user.RegisterRequest{
			Username: "  alice  ",
			Email:    "alice@example.com",
			Password: "pw123",
			Gender:   "F",
		})
		require.NoError(t, err)

		assert.Equal(t, "alice", res.Username)
		assert.Equal(t, "alice@example.com", res.Email)
		assert.Equal(t, user.RoleUser, res.Role)

		require.NotNil(t, created)
		assert.NotEqual(t, "pw123", created.Password, "password must be stored hashed")
		assert.True(t, password.Verify("pw123", created.Password))
		require.NotNil(t, created.Gender)
		assert.Equal(t, user.GenderFemale, *created.Gender)
	})

	t.Run("invalid gender stored as absent", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepo{
			existsByEmailFn: func(_ context.Context, email string) (bool, error) { return false, nil },
			createFn: func(_ context.Context, u *user.User) (int, error) {
				created = u
				return 1, nil
			},
		}

		_, err := newService(repo, nil, nil).Register(context.Background(), user.RegisterRequest{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "pw",
			Gender:   "unknown",
		})
		require.NoError(t, err)
		assert.Nil(t, created.Gender)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeUserRepo{
			existsByEmailFn: func(_ context.Context, email string) (bool, error) { return true, nil },
		}

		_, err := newService(repo, nil, nil).Register(context.Background(), user.RegisterRequest{
			Username: "alice",
			Email:    "taken@example.com",
			Password: "pw",
		})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyInUse)
	})

	t.Run("validation failure never reaches the repository", func(t *testing.T) {
		// Nil function fields panic if called; a panic here means the
		// service skipped validation.
		_, err := newService(&fakeUserRepo{}, nil, nil).Register(context.Background(), user.RegisterRequest{})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	hashed, err := password.Hash("right-password")
	require.NoError(t, err)

	stored := &user.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
		Password: hashed,
		Role:     user.RoleUser,
	}

	t.Run("success issues verifiable token", func(t *testing.T) {
		repo := &fakeUserRepo{
			findByEmailFn: func(_ context.Context, email string) (*user.User, error) { return stored, nil },
		}

		res, err := newService(repo, nil, nil).Login(context.Background(), user.LoginRequest{
			Email:    "alice@example.com",
			Password: "right-password",
		})
		require.NoError(t, err)

		claims, err := jwt.NewManager("test-secret").ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "USER", claims.Role)

		assert.Equal(t, 42, res.User.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := &fakeUserRepo{
			findByEmailFn: func(_ context.Context, email string) (*user.User, error) {
				return nil, user.ErrUserNotFound
			},
		}

		_, err := newService(repo, nil, nil).Login(context.Background(), user.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, user.ErrWrongEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeUserRepo{
			findByEmailFn: func(_ context.Context, email string) (*user.User, error) { return stored, nil },
		}

		_, err := newService(repo, nil, nil).Login(context.Background(), user.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, user.ErrWrongPassword)
	})
}

func TestUpdateProfile(t *testing.T) {
	repo := &fakeUserRepo{
		findByIDFn: func(_ context.Context, id int) (*user.User, error) {
			return &user.User{ID: id, Username: "old-name", Email: "a@b.com", Role: user.RoleUser}, nil
		},
		updateProfileFn: func(_ context.Context, u *user.User) error { return nil },
	}

	dto, err := newService(repo, nil, nil).UpdateProfile(context.Background(), 7, user.UpdateProfileRequest{
		Username: "new-name",
		Gender:   "M",
		Bio:      "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "new-name", dto.Username)
	require.NotNil(t, dto.Gender)
	assert.Equal(t, user.GenderMale, *dto.Gender)
	require.NotNil(t, dto.Bio)
	assert.Equal(t, "hello", *dto.Bio)
}

func TestUpdatePicture(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var savedURL string
		repo := &fakeUserRepo{
			updatePictureFn: func(_ context.Context, id int, url string) error {
				savedURL = url
				return nil
			},
		}
		storage := &fakeStorage{url: "http://cdn/profiles/abc.png"}
		images := &fakeProcessor{out: []byte("processed"), contentType: "image/png"}

		url, err := newService(repo, storage, images).UpdatePicture(context.Background(), 7, []byte("raw"))
		require.NoError(t, err)

		assert.Equal(t, "http://cdn/profiles/abc.png", url)
		assert.Equal(t, url, savedURL)
		assert.Equal(t, []byte("processed"), storage.data)
		assert.Equal(t, "image/png", storage.contentType)
		assert.True(t, strings.HasPrefix(storage.key, "profiles/7_"))
		assert.True(t, strings.HasSuffix(storage.key, ".png"))
	})

	t.Run("invalid image", func(t *testing.T) {
		images := &fakeProcessor{err: assert.AnError}

		_, err := newService(&fakeUserRepo{}, &fakeStorage{}, images).UpdatePicture(context.Background(), 7, []byte("junk"))
		assert.ErrorIs(t, err, user.ErrInvalidPicture)
	})
}
