package gorm

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a single stored blob.
type Entry struct {
	Key       string         `gorm:"column:store_key;primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"column:value"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (Entry) TableName() string {
	return "store_entries"
}

// Store keeps snapshots in the store_entries table.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db}
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	e := Entry{}
	err := s.db.First(&e, "store_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	return []byte(e.Value), true, nil
}

func (s *Store) Set(key string, blob []byte) error {
	// update value if the key exists or create a new entry
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Entry{Key: key, Value: datatypes.JSON(blob), UpdatedAt: time.Now()}).Error
}
