package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noah-isme/edumanage-api/internal/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a KeyValueStore that keeps each blob in a kv_records row.
func NewGormStore(db *gorm.DB) KeyValueStore {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var record models.KVRecord
	err := s.db.WithContext(ctx).Where("store_key = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return []byte(record.Value), true, nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now().UTC()
	record := models.KVRecord{
		Key:       key,
		Value:     datatypes.JSON(value),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("store_key = ?", key).Delete(&models.KVRecord{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
