package models

import "time"

// Profile holds the optional display data of a user. The login flow works
// without it; a missing profile only means the display name falls back to
// the email local-part.
type Profile struct {
	// UserID links the profile to its user account.
	UserID uint64 `gorm:"primaryKey;column:user_id"`
	// Name is the display name shown in the admin surface.
	Name string `gorm:"size:255"`
	// Phone is an optional contact number.
	Phone string `gorm:"size:50"`
	// CreatedAt is the timestamp when the profile was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the profile was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Profile model.
func (Profile) TableName() string {
	return "profiles"
}
