package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Repositories kumpulan repository per aggregate.
type Repositories struct {
	User       *UserRepository
	Catalog    *CatalogRepository
	Roll       *RollRepository
	SP         *SPRepository
	Penerimaan *PenerimaanRepository
	Batch      *BatchRepository
	Order      *OrderRepository
	Retur      *ReturRepository
	Audit      *AuditRepository
	Settings   *SettingsRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Catalog:    NewCatalogRepository(db),
		Roll:       NewRollRepository(db),
		SP:         NewSPRepository(db),
		Penerimaan: NewPenerimaanRepository(db),
		Batch:      NewBatchRepository(db),
		Order:      NewOrderRepository(db),
		Retur:      NewReturRepository(db),
		Audit:      NewAuditRepository(db),
		Settings:   NewSettingsRepository(db),
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
