package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

type User struct {
	ID         int       `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	Email      string    `json:"email" db:"email"`
	Password   string    `json:"-" db:"password"` // Never expose in JSON
	Role       Role      `json:"role" db:"role"`
	PictureURL *string   `json:"picture_url,omitempty" db:"picture_url"`
	Gender     *Gender   `json:"gender,omitempty" db:"gender"`
	Bio        *string   `json:"bio,omitempty" db:"bio"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// NormalizeGender coerces raw input to a valid gender value.
// Anything outside {M, F, O} is stored as absent, not rejected.
func NormalizeGender(raw string) *Gender {
	switch Gender(raw) {
	case GenderMale, GenderFemale, GenderOther:
		g := Gender(raw)
		return &g
	default:
		return nil
	}
}
