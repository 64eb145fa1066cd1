package dto

import "time"

type CreateOrderItemDTO struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequestDTO struct {
	Items     []CreateOrderItemDTO `json:"items"`
	Type      string               `json:"type"`
	SectionID *uint                `json:"sectionId"`
	Row       *string              `json:"row"`
	Seat      *string              `json:"seat"`
	GuestName *string              `json:"guestName"`
}

type OrderStatusUpdateDTO struct {
	Status string `json:"status"`
}

type OrderItemDTO struct {
	ID          uint       `json:"id"`
	OrderID     uint       `json:"orderId"`
	ProductID   uint       `json:"productId"`
	Quantity    int        `json:"quantity"`
	PriceAtTime string     `json:"priceAtTime"`
	Product     ProductDTO `json:"product"`
}

// OrderWithDetailsDTO 訂單加上項目(含商品)與配送區域的完整視圖
type OrderWithDetailsDTO struct {
	ID          uint           `json:"id"`
	UserID      *string        `json:"userId"`
	GuestName   *string        `json:"guestName"`
	Status      string         `json:"status"`
	Type        string         `json:"type"`
	SectionID   *uint          `json:"sectionId"`
	Row         *string        `json:"row"`
	Seat        *string        `json:"seat"`
	DeliveryFee string         `json:"deliveryFee"`
	TotalAmount string         `json:"totalAmount"`
	CreatedAt   time.Time      `json:"createdAt"`
	OrderNumber string         `json:"orderNumber"`
	Items       []OrderItemDTO `json:"items"`
	Section     *SectionDTO    `json:"section"`
}
