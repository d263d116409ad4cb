package localstore

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"krishi/entities"
)

type sqliteStore struct{ db *gorm.DB }

func New(db *gorm.DB) Store { return &sqliteStore{db} }

func (s *sqliteStore) Get(key string) (string, bool, error) {
	var item entities.KVItem
	if err := s.db.First(&item, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return item.Value, true, nil
}

func (s *sqliteStore) Set(key, value string) error {
	item := entities.KVItem{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

func (s *sqliteStore) Remove(key string) error {
	return s.db.Delete(&entities.KVItem{}, "key = ?", key).Error
}
