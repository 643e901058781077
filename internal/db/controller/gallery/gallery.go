// Package gallery provides CRUD operations for gallery images.
package gallery

import (
	"errors"

	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/db/models"
)

var (
	// ErrImageNotFound is returned when a gallery image is not found.
	ErrImageNotFound = errors.New("gallery image not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new gallery image.
func Create(db *gorm.DB, img *models.GalleryImage) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(img).Error
}

// List retrieves images ordered by category and sort order. An empty
// category returns the whole gallery.
func List(db *gorm.DB, category string) ([]models.GalleryImage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Model(&models.GalleryImage{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var images []models.GalleryImage
	if err := query.Order("category, sort_order, id").Find(&images).Error; err != nil {
		return nil, err
	}

	return images, nil
}

// Update overwrites the metadata of an existing image.
func Update(db *gorm.DB, img *models.GalleryImage) error {
	if db == nil {
		return ErrDBNil
	}
	if img == nil || img.ID == 0 {
		return ErrImageNotFound
	}

	result := db.Model(&models.GalleryImage{}).Where("id = ?", img.ID).Updates(map[string]interface{}{
		"category":   img.Category,
		"title":      img.Title,
		"image_url":  img.ImageURL,
		"sort_order": img.SortOrder,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrImageNotFound
	}

	return nil
}

// Delete removes an image record. The stored file is not touched; media
// cleanup is a manual operation.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.GalleryImage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrImageNotFound
	}

	return nil
}
