// Package setting provides CRUD operations for the website settings table.
// Rows are keyed by the (section, key) pair; Set implements the
// read-then-write upsert the admin surface relies on (last writer wins,
// no detected conflicts).
package setting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/db/models"
)

const (
	sectionKeyQueryPattern = "section = ? AND key = ?"
	sectionQueryPattern    = "section = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingSectionEmpty is returned when a section name is empty.
	ErrSettingSectionEmpty = errors.New("setting section cannot be empty")
	// ErrSettingKeyEmpty is returned when a key is empty.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its section and key.
func Get(db *gorm.DB, section, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if section == "" {
		return nil, ErrSettingSectionEmpty
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.Setting
	result := db.Where(sectionKeyQueryPattern, section, key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// ListSection retrieves all settings of one section.
func ListSection(db *gorm.DB, section string) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if section == "" {
		return nil, ErrSettingSectionEmpty
	}

	var settings []models.Setting
	result := db.Where(sectionQueryPattern, section).Order("key").Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// GetAll retrieves all settings from the database.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Order("section, key").Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Set creates or updates a setting by (section, key).
// This is a read-then-write pair, not an atomic upsert: two concurrent
// writers to the same key race and the last write wins.
func Set(db *gorm.DB, section, key string, kind models.SettingKind, value string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if section == "" {
		return nil, ErrSettingSectionEmpty
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.Setting
	result := db.Where(sectionKeyQueryPattern, section, key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Setting doesn't exist, create it
		setting = models.Setting{
			Section: section,
			Key:     key,
			Kind:    kind,
			Value:   value,
		}

		if err := db.Create(&setting).Error; err != nil {
			return nil, err
		}

		return &setting, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	// Setting exists, update it in place
	setting.Kind = kind
	setting.Value = value
	result = db.Save(&setting)
	if result.Error != nil {
		return nil, result.Error
	}

	return &setting, nil
}

// Delete deletes a setting by (section, key). Used only for list-valued
// sub-entities; regular fields are overwritten, never deleted.
func Delete(db *gorm.DB, section, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if section == "" {
		return ErrSettingSectionEmpty
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Where(sectionKeyQueryPattern, section, key).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
