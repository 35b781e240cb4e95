package model

import "github.com/shopspring/decimal"

// OrderItem represents a single product line within an order.
type OrderItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderID     uint            `json:"order_id" gorm:"not null;index"`
	ProductName string          `json:"product_name" gorm:"size:200;not null"`
	Quantity    int             `json:"quantity" gorm:"not null;default:1"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null;default:0.00"`

	// Relations
	Order Order `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
