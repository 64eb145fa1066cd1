package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypePickup, OrderTypeDelivery:
		return true
	default:
		return false
	}
}

// DeliveryFee 場館內配送固定費用
var DeliveryFee = decimal.New(250, -2) // 2.50

// Order 訂單與其項目一次性建立，之後只透過狀態轉移異動
// 取消是終態，不做實體刪除
type Order struct {
	OrderID     uint            `gorm:"primaryKey" json:"order_id"`
	UserID      *string         `gorm:"type:varchar(100)" json:"user_id"`
	GuestName   *string         `gorm:"type:varchar(100)" json:"guest_name"`
	Status      OrderStatus     `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`
	Type        OrderType       `gorm:"not null;type:varchar(20)" json:"type"`
	SectionID   *uint           `json:"section_id"`
	Row         *string         `gorm:"type:varchar(10)" json:"row"`
	Seat        *string         `gorm:"type:varchar(10)" json:"seat"`
	DeliveryFee decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"delivery_fee"`
	TotalAmount decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	OrderNumber string          `gorm:"not null;uniqueIndex;type:varchar(12)" json:"order_number"`
	CreatedAt   time.Time       `gorm:"not null;default:now()" json:"created_at"`

	OrderItems []OrderItem `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	Section    *Section    `gorm:"foreignKey:SectionID;references:SectionID" json:"section"`
}

// OrderItem PriceAtTime 為下單當下的商品價格快照，與商品後續改價脫鉤
type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey" json:"order_item_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null" json:"product_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	PriceAtTime decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price_at_time"`

	Product *Product `gorm:"foreignKey:ProductID;references:ProductID" json:"product"`
}
