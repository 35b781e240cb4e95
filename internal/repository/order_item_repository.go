package repository

import (
	"context"

	"gorm.io/gorm"

	"shoporders/internal/model"
)

// OrderItemRepository defines order-item persistence operations.
type OrderItemRepository interface {
	Create(ctx context.Context, item *model.OrderItem) error
	FindByID(ctx context.Context, id uint) (*model.OrderItem, error)
	List(ctx context.Context) ([]model.OrderItem, error)
	ListByOrder(ctx context.Context, orderID uint) ([]model.OrderItem, error)
	Delete(ctx context.Context, id uint) error
}

type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository builds a GORM-backed repository.
func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(ctx context.Context, item *model.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderItemRepository) FindByID(ctx context.Context, id uint) (*model.OrderItem, error) {
	var item model.OrderItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) List(ctx context.Context) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) ListByOrder(ctx context.Context, orderID uint) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).
		Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.OrderItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
