package models

import "time"

// LostPet is one listing on the public lost pet board.
type LostPet struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	PetName     string `gorm:"size:255;not null" json:"pet_name"`
	Species     string `gorm:"size:100" json:"species"`
	Breed       string `gorm:"size:100" json:"breed"`
	Description string `gorm:"type:text" json:"description"`
	PhotoURL    string `gorm:"size:512" json:"photo_url"`
	ContactName string `gorm:"size:255" json:"contact_name"`
	// ContactPhone is the number visitors should call when the pet is spotted.
	ContactPhone string `gorm:"size:50" json:"contact_phone"`
	// LastSeen is a free-text location description, not a coordinate.
	LastSeen string `gorm:"size:512" json:"last_seen"`
	// Found listings stay in the database but drop off the default listing.
	Found     bool      `json:"found"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
