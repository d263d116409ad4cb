package entities

import "time"

// KVItem backs the on-device key-value storage (session, last location).
// Values are JSON-serialized by the caller.
type KVItem struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `json:"value"`
	UpdatedAt time.Time
}
