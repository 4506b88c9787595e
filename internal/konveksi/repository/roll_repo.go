package repository

import (
	"context"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RollRepository struct {
	db *gorm.DB
}

func NewRollRepository(db *gorm.DB) *RollRepository {
	return &RollRepository{db: db}
}

func (r *RollRepository) WithTx(tx *gorm.DB) *RollRepository {
	return &RollRepository{db: tx}
}

func (r *RollRepository) Create(ctx context.Context, roll *entity.Roll) error {
	return r.db.WithContext(ctx).Create(roll).Error
}

func (r *RollRepository) FindByID(ctx context.Context, id string) (*entity.Roll, error) {
	var roll entity.Roll
	if err := r.db.WithContext(ctx).First(&roll, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &roll, nil
}

// FindByIDForUpdate locks the row for the duration of the surrounding
// transaction. Callers must be inside one.
func (r *RollRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Roll, error) {
	var roll entity.Roll
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&roll, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &roll, nil
}

func (r *RollRepository) List(ctx context.Context, status entity.RollStatus) ([]entity.Roll, error) {
	var rolls []entity.Roll
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&rolls).Error
	return rolls, err
}

func (r *RollRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Roll, error) {
	var rolls []entity.Roll
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rolls).Error
	return rolls, err
}

func (r *RollRepository) Update(ctx context.Context, roll *entity.Roll) error {
	return r.db.WithContext(ctx).Save(roll).Error
}

func (r *RollRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Roll{}, "id = ?", id).Error
}

// LastBarcode returns the highest barcode under one supplier+month prefix,
// e.g. "BB-TM-2602-007", or "" when the scope is empty.
func (r *RollRepository) LastBarcode(ctx context.Context, prefix string) (string, error) {
	var roll entity.Roll
	err := r.db.WithContext(ctx).
		Where("barcode LIKE ?", prefix+"%").
		Order("barcode DESC").
		First(&roll).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return roll.Barcode, nil
}

// ReleaseBySP resets every roll assigned to the given SP number back to
// Tersedia. Used when a draft SP is edited or deleted.
func (r *RollRepository) ReleaseBySP(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.Roll{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"status": entity.RollTersedia, "sp_no": ""}).Error
}
