package repository

import (
	"context"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SPRepository struct {
	db *gorm.DB
}

func NewSPRepository(db *gorm.DB) *SPRepository {
	return &SPRepository{db: db}
}

func (r *SPRepository) WithTx(tx *gorm.DB) *SPRepository {
	return &SPRepository{db: tx}
}

func (r *SPRepository) Create(ctx context.Context, sp *entity.SuratPesanan) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

func (r *SPRepository) FindByID(ctx context.Context, id string) (*entity.SuratPesanan, error) {
	var sp entity.SuratPesanan
	if err := r.db.WithContext(ctx).Preload("Rows").First(&sp, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sp, nil
}

func (r *SPRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.SuratPesanan, error) {
	var sp entity.SuratPesanan
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&sp, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Where("sp_id = ?", id).Find(&sp.Rows).Error; err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *SPRepository) FindByNo(ctx context.Context, no string) (*entity.SuratPesanan, error) {
	var sp entity.SuratPesanan
	if err := r.db.WithContext(ctx).Preload("Rows").First(&sp, "no = ?", no).Error; err != nil {
		return nil, translate(err)
	}
	return &sp, nil
}

func (r *SPRepository) List(ctx context.Context, status entity.SPStatus) ([]entity.SuratPesanan, error) {
	var items []entity.SuratPesanan
	q := r.db.WithContext(ctx).Preload("Rows").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *SPRepository) Update(ctx context.Context, sp *entity.SuratPesanan) error {
	return r.db.WithContext(ctx).Save(sp).Error
}

// ReplaceRows swaps the line set of a draft SP.
func (r *SPRepository) ReplaceRows(ctx context.Context, spID string, rows []entity.SPRow) error {
	if err := r.db.WithContext(ctx).Delete(&entity.SPRow{}, "sp_id = ?", spID).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *SPRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&entity.SPRow{}, "sp_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&entity.SuratPesanan{}, "id = ?", id).Error
}

// LastNo returns the highest SP number under one vendor+day prefix.
func (r *SPRepository) LastNo(ctx context.Context, prefix string) (string, error) {
	var sp entity.SuratPesanan
	err := r.db.WithContext(ctx).
		Where("no LIKE ?", prefix+"%").
		Order("no DESC").
		First(&sp).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return sp.No, nil
}
