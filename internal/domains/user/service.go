package user

import "context"

// Service defines the business logic layer contract.
type Service interface {
	// Authentication
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Profiles
	List(ctx context.Context) ([]UserDTO, error)
	GetByID(ctx context.Context, id int) (*UserDTO, error)
	UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*UserDTO, error)
	UpdatePicture(ctx context.Context, id int, data []byte) (string, error)
}
