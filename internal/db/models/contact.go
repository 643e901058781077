package models

import "time"

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Subject string `gorm:"size:255" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	// Read marks messages already handled by an operator.
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
