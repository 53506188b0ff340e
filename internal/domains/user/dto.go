package user

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// AUTH DTOs
// ========================================

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.Errors{
		"username": validation.Validate(strings.TrimSpace(r.Username),
			validation.Required.Error("Username is required"),
		),
		"email": validation.Validate(strings.TrimSpace(r.Email),
			validation.Required.Error("Wrong mail format."),
			is.Email.Error("Wrong mail format."),
		),
		"password": validation.Validate(r.Password,
			validation.Required.Error("password is required"),
		),
	}.Filter()
}

// RegisterResponse echoes the projected fields of the new account.
// The password never leaves the service layer.
type RegisterResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.Errors{
		"email": validation.Validate(strings.TrimSpace(r.Email),
			validation.Required.Error("Wrong mail format."),
			is.Email.Error("Wrong mail format."),
		),
		"password": validation.Validate(r.Password,
			validation.Required.Error("password is required"),
		),
	}.Filter()
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ========================================
// USER PROFILE DTOs
// ========================================

// UserDTO - public user representation (safe to expose)
type UserDTO struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	PictureURL *string   `json:"picture_url,omitempty"`
	Gender     *Gender   `json:"gender,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToDTO converts a User entity to its public projection.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		PictureURL: u.PictureURL,
		Gender:     u.Gender,
		Bio:        u.Bio,
		CreatedAt:  u.CreatedAt,
	}
}

// UpdateProfileRequest - user updates own profile
type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.Errors{
		"username": validation.Validate(strings.TrimSpace(r.Username),
			validation.When(r.Username != "",
				validation.Required.Error("Username is required"),
			),
		),
	}.Filter()
}

// PictureResponse carries the public URL of an uploaded profile picture.
type PictureResponse struct {
	PictureURL string `json:"picture_url"`
}
