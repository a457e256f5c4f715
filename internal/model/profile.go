package model

import "time"

// Profile is the per-user editable profile. It follows the same
// original/draft/save pattern as ContentDocument, scoped to one user.
type Profile struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	AvatarURL string     `json:"avatar_url"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// User is an admin account. Only the password hash is ever stored.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
