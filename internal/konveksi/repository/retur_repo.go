package repository

import (
	"context"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReturRepository ketiga alur retur: customer, vendor, supplier.
type ReturRepository struct {
	db *gorm.DB
}

func NewReturRepository(db *gorm.DB) *ReturRepository {
	return &ReturRepository{db: db}
}

func (r *ReturRepository) WithTx(tx *gorm.DB) *ReturRepository {
	return &ReturRepository{db: tx}
}

// --- Retur customer ---

func (r *ReturRepository) CreateCustomer(ctx context.Context, rc *entity.ReturCustomer) error {
	return r.db.WithContext(ctx).Create(rc).Error
}

func (r *ReturRepository) FindCustomerByID(ctx context.Context, id string) (*entity.ReturCustomer, error) {
	var rc entity.ReturCustomer
	if err := r.db.WithContext(ctx).First(&rc, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rc, nil
}

func (r *ReturRepository) FindCustomerByIDForUpdate(ctx context.Context, id string) (*entity.ReturCustomer, error) {
	var rc entity.ReturCustomer
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&rc, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rc, nil
}

func (r *ReturRepository) ListCustomer(ctx context.Context) ([]entity.ReturCustomer, error) {
	var items []entity.ReturCustomer
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ReturRepository) UpdateCustomer(ctx context.Context, rc *entity.ReturCustomer) error {
	return r.db.WithContext(ctx).Save(rc).Error
}

// --- Retur vendor ---

func (r *ReturRepository) CreateVendor(ctx context.Context, rv *entity.ReturVendor) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReturRepository) FindVendorByID(ctx context.Context, id string) (*entity.ReturVendor, error) {
	var rv entity.ReturVendor
	if err := r.db.WithContext(ctx).First(&rv, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *ReturRepository) FindVendorByIDForUpdate(ctx context.Context, id string) (*entity.ReturVendor, error) {
	var rv entity.ReturVendor
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&rv, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *ReturRepository) ListVendor(ctx context.Context) ([]entity.ReturVendor, error) {
	var items []entity.ReturVendor
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ReturRepository) UpdateVendor(ctx context.Context, rv *entity.ReturVendor) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

// --- Retur supplier ---

func (r *ReturRepository) CreateSupplier(ctx context.Context, rs *entity.ReturSupplier) error {
	return r.db.WithContext(ctx).Create(rs).Error
}

func (r *ReturRepository) FindSupplierByID(ctx context.Context, id string) (*entity.ReturSupplier, error) {
	var rs entity.ReturSupplier
	if err := r.db.WithContext(ctx).First(&rs, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rs, nil
}

func (r *ReturRepository) FindSupplierByIDForUpdate(ctx context.Context, id string) (*entity.ReturSupplier, error) {
	var rs entity.ReturSupplier
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&rs, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rs, nil
}

func (r *ReturRepository) ListSupplier(ctx context.Context) ([]entity.ReturSupplier, error) {
	var items []entity.ReturSupplier
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ReturRepository) UpdateSupplier(ctx context.Context, rs *entity.ReturSupplier) error {
	return r.db.WithContext(ctx).Save(rs).Error
}
