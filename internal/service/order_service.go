package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/util"
	"github.com/shopspring/decimal"
)

// 取餐號碼碰撞時換號重試的上限
const maxOrderNumberRetry = 3

type CreateOrderItemParams struct {
	ProductID uint
	Quantity  int
}

type CreateOrderParams struct {
	Items     []CreateOrderItemParams
	Type      model.OrderType
	SectionID *uint
	Row       *string
	Seat      *string
	GuestName *string
	// 由middleware帶入, 取代全域current user
	Identity *model.Identity
}

type IOrderService interface {
	CreateOrder(ctx context.Context, arg *CreateOrderParams) (*model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	ListOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error)
}

type OrderService struct {
	orderRepo   db.IOrderRepository
	catalogRepo db.ICatalogRepository
	// 開啟後依狀態表拒絕不合法轉移, 預設關閉: 任何合法狀態值都直接覆寫
	strictStatusTransition bool
}

func NewOrderService(orderRepo db.IOrderRepository, catalogRepo db.ICatalogRepository, strictStatusTransition bool) IOrderService {
	return &OrderService{
		orderRepo:              orderRepo,
		catalogRepo:            catalogRepo,
		strictStatusTransition: strictStatusTransition,
	}
}

// CreateOrder 建立訂單
// 價格以下單當下快照, 小計用decimal累加, 只在入庫前取到小數2位
// 錯誤:
//   - apperr.BadRequestCode 400: 空購物車/數量不正/訂單型別不正/配送欄位不齊
//   - apperr.NotFoundCode 404: 任一商品不存在, 整張訂單不成立
func (o *OrderService) CreateOrder(ctx context.Context, arg *CreateOrderParams) (*model.Order, error) {
	if err := validateCreateOrder(arg); err != nil {
		return nil, err
	}

	// 批次查價, 一次撈齊整張購物車的商品
	ids := make([]uint, 0, len(arg.Items))
	seen := make(map[uint]struct{}, len(arg.Items))
	for _, item := range arg.Items {
		if _, ok := seen[item.ProductID]; !ok {
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}
	products, err := o.catalogRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	orderItems := make([]model.OrderItem, 0, len(arg.Items))
	for _, item := range arg.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, apperr.Newf(apperr.NotFoundCode, "Product %d not found", item.ProductID)
		}
		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, model.OrderItem{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PriceAtTime: product.Price,
		})
	}

	deliveryFee := decimal.Zero
	var sectionID *uint
	var row, seat *string
	if arg.Type == model.OrderTypeDelivery {
		deliveryFee = model.DeliveryFee
		sectionID = arg.SectionID
		row = arg.Row
		seat = arg.Seat
	}

	order := &model.Order{
		UserID:      identityUserID(arg.Identity),
		GuestName:   resolveGuestName(arg.GuestName, arg.Identity),
		Status:      model.OrderStatusPending,
		Type:        arg.Type,
		SectionID:   sectionID,
		Row:         row,
		Seat:        seat,
		DeliveryFee: deliveryFee,
		TotalAmount: subtotal.Add(deliveryFee).Round(2),
		OrderItems:  orderItems,
	}

	// unique index擋下碰撞, 換號重試
	for i := 0; i < maxOrderNumberRetry; i++ {
		order.OrderNumber = util.NewOrderNumber()
		err = o.orderRepo.CreateOrder(ctx, order)
		if !errors.Is(err, db.ErrOrderNumberDuplicated) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	return o.orderRepo.GetOrderByID(ctx, order.OrderID)
}

func validateCreateOrder(arg *CreateOrderParams) error {
	if len(arg.Items) == 0 {
		return apperr.New(apperr.BadRequestCode, "order must contain at least one item")
	}
	for _, item := range arg.Items {
		if item.Quantity <= 0 {
			return apperr.New(apperr.BadRequestCode, "item quantity must be positive")
		}
	}
	if !arg.Type.Valid() {
		return apperr.Newf(apperr.BadRequestCode, "invalid order type: %s", arg.Type)
	}
	if arg.Type == model.OrderTypeDelivery {
		if arg.SectionID == nil || isBlank(arg.Row) || isBlank(arg.Seat) {
			return apperr.New(apperr.BadRequestCode, "delivery orders require section, row and seat")
		}
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

func identityUserID(identity *model.Identity) *string {
	if identity == nil || identity.ID == "" {
		return nil
	}
	id := identity.ID
	return &id
}

// 請求沒帶guestName且有登入身份時, 以身份的顯示名稱補上
func resolveGuestName(guestName *string, identity *model.Identity) *string {
	if !isBlank(guestName) {
		return guestName
	}
	if identity != nil {
		if name := identity.DisplayName(); name != "" {
			return &name
		}
	}
	return nil
}

// GetOrder 回傳組裝完成的訂單明細
// 錯誤:
//   - apperr.NotFoundCode 404: 訂單不存在
func (o *OrderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrOrderNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "Order not found")
		}
		return nil, err
	}
	return order, nil
}

func (o *OrderService) ListOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return o.orderRepo.GetAllOrders(ctx, status)
}

// UpdateOrderStatus 覆寫狀態後回傳重新組裝的明細
// 錯誤:
//   - apperr.BadRequestCode 400: 未知狀態值, 或strict模式下不合法的轉移
//   - apperr.NotFoundCode 404: 訂單不存在
func (o *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, apperr.Newf(apperr.BadRequestCode, "invalid status: %s", status)
	}

	if o.strictStatusTransition {
		current, err := o.GetOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(status) {
			return nil, apperr.Newf(apperr.BadRequestCode, "cannot transition from %s to %s", current.Status, status)
		}
	}

	err := o.orderRepo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, db.ErrOrderNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "Order not found")
		}
		return nil, err
	}

	return o.GetOrder(ctx, id)
}
