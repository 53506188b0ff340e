package user

import "context"

// Repository defines the contract for the user data access layer.
type Repository interface {
	// Create inserts a new user and returns its id.
	// Returns ErrEmailAlreadyInUse when the email is taken.
	Create(ctx context.Context, u *User) (int, error)

	// FindByID returns the user or ErrUserNotFound.
	FindByID(ctx context.Context, id int) (*User, error)

	// FindByEmail returns the user or ErrUserNotFound (used for login).
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns all users (projected fields only are exposed upstream).
	List(ctx context.Context) ([]User, error)

	// UpdateProfile persists username/gender/bio changes.
	// Returns ErrUserNotFound when the user does not exist.
	UpdateProfile(ctx context.Context, u *User) error

	// UpdatePictureURL stores the public URL of the profile picture.
	UpdatePictureURL(ctx context.Context, id int, url string) error
}
