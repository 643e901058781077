package settings

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	settingctl "github.com/amigovet/amigovet-server/internal/db/controller/setting"
)

// WriteError reports which key of a save failed. Keys written before the
// failing one stay written; the operator re-submits to complete the save.
type WriteError struct {
	Section string
	Key     string
	Err     error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write setting %s.%s: %v", e.Section, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Save encodes and persists the given fields of one section, one upsert
// per key in deterministic key order. The save fails fast on the first
// key error and never rolls back keys already written. On success the
// section's change topic is published so mounted readers re-fetch.
func Save(db *gorm.DB, bus *Bus, section string, fields map[string]any) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, key := range keys {
		kind, raw := Encode(fields[key])

		if _, err := settingctl.Set(db, section, key, kind, raw); err != nil {
			return &WriteError{Section: section, Key: key, Err: err}
		}
	}

	if bus != nil {
		bus.Publish(section)
	}

	return nil
}
