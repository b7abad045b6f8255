package migrations

import (
	"github.com/flow-hydraulics/account-keeper/migrations/internal/m20261018"
	"github.com/go-gormigrate/gormigrate/v2"
)

func List() []*gormigrate.Migration {
	ms := []*gormigrate.Migration{
		{
			ID:       m20261018.ID,
			Migrate:  m20261018.Migrate,
			Rollback: m20261018.Rollback,
		},
	}
	return ms
}
