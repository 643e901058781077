// Package models contains database model definitions.
package models

import "time"

// SettingKind is the explicit type discriminator of a stored setting value.
// Rows written before the discriminator existed carry an empty kind and are
// decoded with the legacy heuristic.
type SettingKind string

const (
	// KindLegacy marks rows written without a discriminator.
	KindLegacy SettingKind = ""
	// KindString marks quote-wrapped string payloads.
	KindString SettingKind = "string"
	// KindNumber marks numeric payloads.
	KindNumber SettingKind = "number"
	// KindBool marks boolean payloads.
	KindBool SettingKind = "bool"
	// KindJSON marks JSON-encoded array or object payloads.
	KindJSON SettingKind = "json"
)

// Setting represents one configuration value of a website section.
// A row is uniquely identified by the (section, key) pair; the last writer
// wins, there is no versioning.
type Setting struct {
	ID      uint64      `gorm:"primaryKey"`
	Section string      `gorm:"uniqueIndex:idx_settings_section_key;size:100;not null"`
	Key     string      `gorm:"uniqueIndex:idx_settings_section_key;size:100;not null"`
	Kind    SettingKind `gorm:"size:20"`
	Value   string      `gorm:"type:text"`
	// CreatedAt is the timestamp when the setting was first written (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp of the last write (managed by GORM).
	UpdatedAt time.Time
}
