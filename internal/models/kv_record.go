package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVRecord stores one whole-collection blob for the SQL-backed key-value store.
type KVRecord struct {
	Key       string         `gorm:"column:store_key;primaryKey;size:128" json:"key"`
	Value     datatypes.JSON `gorm:"type:json;not null" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName pins the table used by the gorm key-value store.
func (KVRecord) TableName() string {
	return "kv_records"
}
