package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) WithTx(tx *gorm.DB) *AuditRepository {
	return &AuditRepository{db: tx}
}

// Append writes one entry and trims the trail to MaxAuditEntries, oldest
// first. Called inside the same transaction as the mutation it records so
// the cap holds atomically.
func (r *AuditRepository) Append(ctx context.Context, action, detail, username string) error {
	e := &entity.AuditEntry{
		ID:       uuid.New().String()[:32],
		Action:   action,
		Detail:   detail,
		Username: username,
	}
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM nj_audit_trail
		WHERE id NOT IN (
			SELECT id FROM nj_audit_trail ORDER BY created_at DESC, id DESC LIMIT ?
		)`, entity.MaxAuditEntries).Error
}

// List returns entries newest first.
func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]entity.AuditEntry, int64, error) {
	var items []entity.AuditEntry
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.AuditEntry{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *AuditRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.AuditEntry{}).Count(&n).Error
	return n, err
}
