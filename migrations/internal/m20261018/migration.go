package m20261018

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//
// Initial schema. Types are snapshot here so that the schema state for
// this point in time is preserved and can be rolled back to from later
// migrations.
//

const ID = "20261018"

type Entry struct {
	Key       string         `gorm:"column:store_key;primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"column:value"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (Entry) TableName() string {
	return "store_entries"
}

type IdempotencyKey struct {
	Key        string    `gorm:"column:idempotency_key;primaryKey;size:191"`
	ExpiryDate time.Time `gorm:"column:expiry_date;index"`
}

func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

func Migrate(tx *gorm.DB) error {
	return tx.AutoMigrate(&Entry{}, &IdempotencyKey{})
}

func Rollback(tx *gorm.DB) error {
	return tx.Migrator().DropTable(&IdempotencyKey{}, &Entry{})
}
