package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultOrderStatus is assigned to orders created without an explicit status.
const DefaultOrderStatus = "new"

// Order represents a customer order.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	OrderDate   time.Time       `json:"order_date" gorm:"autoCreateTime"`
	Status      string          `json:"status" gorm:"size:20;default:'new'"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null;default:0.00"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
