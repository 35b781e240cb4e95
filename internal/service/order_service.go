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

// OrderService exposes order CRUD operations.
type OrderService interface {
	CreateOrder(ctx context.Context, userID uint, status string, totalAmount decimal.Decimal) (*model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	ListOrders(ctx context.Context, userID uint) ([]model.Order, error)
	DeleteOrder(ctx context.Context, id uint) (*model.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

// NewOrderService builds an OrderService.
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

// CreateOrder persists a new order, defaulting status to "new" and the total
// amount to 0.00 when omitted.
func (s *orderService) CreateOrder(ctx context.Context, userID uint, status string, totalAmount decimal.Decimal) (*model.Order, error) {
	if status == "" {
		status = model.DefaultOrderStatus
	}

	order := &model.Order{
		UserID:      userID,
		Status:      status,
		TotalAmount: totalAmount,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// ListOrders returns all orders, or only those of the given user when
// userID is non-zero.
func (s *orderService) ListOrders(ctx context.Context, userID uint) ([]model.Order, error) {
	if userID != 0 {
		return s.repo.ListByUser(ctx, userID)
	}
	return s.repo.List(ctx)
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("delete order: %w", err)
	}
	return order, nil
}
