package models

import "time"

// GalleryImage is one image of the public photo gallery. Images are grouped
// by category (clinic, patients, team, ...) and ordered by SortOrder within
// a category.
type GalleryImage struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"size:100;index" json:"category"`
	Title     string    `gorm:"size:255" json:"title"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
