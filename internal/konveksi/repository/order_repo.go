package repository

import (
	"context"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.OrderPenjualan) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.OrderPenjualan, error) {
	var o entity.OrderPenjualan
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.OrderPenjualan, error) {
	var o entity.OrderPenjualan
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Order("id ASC").Find(&o.Items).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context, status entity.OrderStatus) ([]entity.OrderPenjualan, error) {
	var items []entity.OrderPenjualan
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *OrderRepository) Update(ctx context.Context, o *entity.OrderPenjualan) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OrderRepository) ReplaceItems(ctx context.Context, orderID string, items []entity.OrderItem) error {
	if err := r.db.WithContext(ctx).Delete(&entity.OrderItem{}, "order_id = ?", orderID).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&entity.OrderItem{}, "order_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&entity.OrderPenjualan{}, "id = ?", id).Error
}

// LastNo returns the highest order number under one channel+day prefix.
func (r *OrderRepository) LastNo(ctx context.Context, prefix string) (string, error) {
	var o entity.OrderPenjualan
	err := r.db.WithContext(ctx).
		Where("no LIKE ?", prefix+"%").
		Order("no DESC").
		First(&o).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return o.No, nil
}
