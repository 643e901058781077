package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User represents an account able to sign in to the admin surface.
// Whether an account may actually hold an admin session is decided by its
// role grants, not by the account itself.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the account can log in.
	Active bool
	// Email is the unique login identifier.
	Email string `gorm:"unique;size:255;not null"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time
	// DeletedAt is the soft delete timestamp (nil if not deleted, managed by GORM).
	DeletedAt *time.Time
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
