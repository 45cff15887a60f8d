package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one key of the SQLite storage backend. The prompt collection is
// kept as a single JSON document under one key.
type KVEntry struct {
	Key       string         `gorm:"column:entry_key;primaryKey;size:191" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
