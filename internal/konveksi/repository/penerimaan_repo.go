package repository

import (
	"context"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PenerimaanRepository struct {
	db *gorm.DB
}

func NewPenerimaanRepository(db *gorm.DB) *PenerimaanRepository {
	return &PenerimaanRepository{db: db}
}

func (r *PenerimaanRepository) WithTx(tx *gorm.DB) *PenerimaanRepository {
	return &PenerimaanRepository{db: tx}
}

func (r *PenerimaanRepository) Create(ctx context.Context, p *entity.Penerimaan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PenerimaanRepository) FindByID(ctx context.Context, id string) (*entity.Penerimaan, error) {
	var p entity.Penerimaan
	if err := r.db.WithContext(ctx).Preload("Items").First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PenerimaanRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Penerimaan, error) {
	var p entity.Penerimaan
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Where("penerimaan_id = ?", id).Order("id ASC").Find(&p.Items).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PenerimaanRepository) List(ctx context.Context, status entity.PenerimaanStatus) ([]entity.Penerimaan, error) {
	var items []entity.Penerimaan
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *PenerimaanRepository) Update(ctx context.Context, p *entity.Penerimaan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PenerimaanRepository) UpdateItem(ctx context.Context, item *entity.PenerimaanItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// CountBySP counts receipts already recorded against one SP; the PNR
// sequence is scoped per SP.
func (r *PenerimaanRepository) CountBySP(ctx context.Context, spNo string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Penerimaan{}).Where("sp_no = ?", spNo).Count(&n).Error
	return n, err
}

// LastNo returns the highest PNR number under one SP prefix.
func (r *PenerimaanRepository) LastNo(ctx context.Context, prefix string) (string, error) {
	var p entity.Penerimaan
	err := r.db.WithContext(ctx).
		Where("no LIKE ?", prefix+"%").
		Order("no DESC").
		First(&p).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return p.No, nil
}
