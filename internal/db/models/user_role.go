package models

// RoleAdmin is the role label that grants access to the admin surface.
const RoleAdmin = "admin"

// UserRole represents one role grant of a user. A user can hold any number
// of role labels; labels outside RoleAdmin currently carry no meaning for
// this server but are preserved as written.
type UserRole struct {
	// UserID is the ID of the user holding the grant.
	UserID uint64 `gorm:"primaryKey;column:user_id"`
	// Role is the granted role label.
	Role string `gorm:"primaryKey;size:100"`
}

// TableName specifies the database table name for the UserRole model.
func (UserRole) TableName() string {
	return "user_roles"
}
