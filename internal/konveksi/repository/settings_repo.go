package repository

import (
	"context"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) WithTx(tx *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: tx}
}

func (r *SettingsRepository) GetProfile(ctx context.Context) (*entity.CompanyProfile, error) {
	var p entity.CompanyProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", 1).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *SettingsRepository) SaveProfile(ctx context.Context, p *entity.CompanyProfile) error {
	p.ID = 1
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}

func (r *SettingsRepository) GetLabelConfig(ctx context.Context, jenis string) (*entity.LabelConfig, error) {
	var lc entity.LabelConfig
	if err := r.db.WithContext(ctx).First(&lc, "jenis = ?", jenis).Error; err != nil {
		return nil, translate(err)
	}
	return &lc, nil
}

func (r *SettingsRepository) SaveLabelConfig(ctx context.Context, lc *entity.LabelConfig) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(lc).Error
}
