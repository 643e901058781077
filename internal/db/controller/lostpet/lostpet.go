// Package lostpet provides CRUD operations for lost pet listings.
package lostpet

import (
	"errors"

	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/db/models"
)

var (
	// ErrListingNotFound is returned when a lost pet listing is not found.
	ErrListingNotFound = errors.New("lost pet listing not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new listing.
func Create(db *gorm.DB, pet *models.LostPet) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(pet).Error
}

// Get retrieves a listing by ID.
func Get(db *gorm.DB, id uint64) (*models.LostPet, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var pet models.LostPet
	result := db.First(&pet, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, result.Error
	}

	return &pet, nil
}

// List retrieves listings newest first. Found pets are excluded unless
// includeFound is set (the public board only shows open listings).
func List(db *gorm.DB, includeFound bool) ([]models.LostPet, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Model(&models.LostPet{})
	if !includeFound {
		query = query.Where("found = ?", false)
	}

	var pets []models.LostPet
	if err := query.Order("created_at DESC").Find(&pets).Error; err != nil {
		return nil, err
	}

	return pets, nil
}

// Update overwrites an existing listing.
func Update(db *gorm.DB, pet *models.LostPet) error {
	if db == nil {
		return ErrDBNil
	}
	if pet == nil || pet.ID == 0 {
		return ErrListingNotFound
	}

	result := db.Model(&models.LostPet{}).Where("id = ?", pet.ID).Updates(map[string]interface{}{
		"pet_name":      pet.PetName,
		"species":       pet.Species,
		"breed":         pet.Breed,
		"description":   pet.Description,
		"photo_url":     pet.PhotoURL,
		"contact_name":  pet.ContactName,
		"contact_phone": pet.ContactPhone,
		"last_seen":     pet.LastSeen,
		"found":         pet.Found,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}

	return nil
}

// MarkFound flags a listing as resolved without deleting it.
func MarkFound(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.LostPet{}).Where("id = ?", id).Update("found", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}

	return nil
}

// Delete removes a listing.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.LostPet{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}

	return nil
}
