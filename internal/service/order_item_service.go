package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shoporders/internal/errors"
	"shoporders/internal/model"
	"shoporders/internal/repository"
)

// OrderItemService exposes order-item CRUD operations.
type OrderItemService interface {
	CreateItem(ctx context.Context, orderID uint, productName string, quantity int, price decimal.Decimal) (*model.OrderItem, error)
	GetItem(ctx context.Context, id uint) (*model.OrderItem, error)
	ListItems(ctx context.Context, orderID uint) ([]model.OrderItem, error)
	DeleteItem(ctx context.Context, id uint) (*model.OrderItem, error)
}

type orderItemService struct {
	repo repository.OrderItemRepository
}

// NewOrderItemService builds an OrderItemService.
func NewOrderItemService(repo repository.OrderItemRepository) OrderItemService {
	return &orderItemService{repo: repo}
}

// CreateItem persists a new order item, defaulting quantity to 1 and price
// to 0.00 when omitted.
func (s *orderItemService) CreateItem(ctx context.Context, orderID uint, productName string, quantity int, price decimal.Decimal) (*model.OrderItem, error) {
	if quantity == 0 {
		quantity = 1
	}

	item := &model.OrderItem{
		OrderID:     orderID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create order item: %w", err)
	}
	return item, nil
}

func (s *orderItemService) GetItem(ctx context.Context, id uint) (*model.OrderItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderItemNotFound
		}
		return nil, fmt.Errorf("find order item: %w", err)
	}
	return item, nil
}

// ListItems returns all order items, or only those of the given order when
// orderID is non-zero.
func (s *orderItemService) ListItems(ctx context.Context, orderID uint) ([]model.OrderItem, error) {
	if orderID != 0 {
		return s.repo.ListByOrder(ctx, orderID)
	}
	return s.repo.List(ctx)
}

func (s *orderItemService) DeleteItem(ctx context.Context, id uint) (*model.OrderItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderItemNotFound
		}
		return nil, fmt.Errorf("find order item: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderItemNotFound
		}
		return nil, fmt.Errorf("delete order item: %w", err)
	}
	return item, nil
}
