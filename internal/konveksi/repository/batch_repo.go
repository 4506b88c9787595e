package repository

import (
	"context"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BatchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

func (r *BatchRepository) WithTx(tx *gorm.DB) *BatchRepository {
	return &BatchRepository{db: tx}
}

func (r *BatchRepository) Create(ctx context.Context, b *entity.StokBatch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BatchRepository) FindByID(ctx context.Context, id string) (*entity.StokBatch, error) {
	var b entity.StokBatch
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// FindByIDForUpdate locks the batch row; every sisa mutation goes through
// this inside a transaction so concurrent orders serialize per batch.
func (r *BatchRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.StokBatch, error) {
	var b entity.StokBatch
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BatchRepository) List(ctx context.Context, sku string) ([]entity.StokBatch, error) {
	var items []entity.StokBatch
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if sku != "" {
		q = q.Where("sku = ?", sku)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *BatchRepository) Update(ctx context.Context, b *entity.StokBatch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// StokPerSKU total sisa across all batches of one SKU.
func (r *BatchRepository) StokPerSKU(ctx context.Context, sku string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.StokBatch{}).
		Where("sku = ?", sku).
		Select("COALESCE(SUM(sisa), 0)").
		Scan(&total).Error
	return int(total), err
}
