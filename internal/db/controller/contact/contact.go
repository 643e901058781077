// Package contact provides CRUD operations for contact form messages.
package contact

import (
	"errors"

	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/db/models"
)

var (
	// ErrMessageNotFound is returned when a contact message is not found.
	ErrMessageNotFound = errors.New("contact message not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new contact form message.
func Create(db *gorm.DB, msg *models.ContactMessage) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(msg).Error
}

// List retrieves messages newest first, optionally only unread ones.
func List(db *gorm.DB, unreadOnly bool, limit, offset int) ([]models.ContactMessage, int64, error) {
	if db == nil {
		return nil, 0, ErrDBNil
	}

	var (
		messages []models.ContactMessage
		total    int64
	)

	query := db.Model(&models.ContactMessage{})
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// CountUnread returns the number of unread messages.
func CountUnread(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	err := db.Model(&models.ContactMessage{}).Where("read = ?", false).Count(&count).Error

	return count, err
}

// MarkRead marks one message as handled.
func MarkRead(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

// Delete removes a message.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
