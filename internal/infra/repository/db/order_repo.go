package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"gorm.io/gorm"
)

var (
	// ErrOrderNotFound 訂單不存在
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNumberDuplicated 取餐號碼碰撞, 呼叫端換號重試
	ErrOrderNumberDuplicated = errors.New("order number duplicated")
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrder 訂單與訂單項目為同一個交易單位, 要嘛全部成立要嘛全部不存在
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrOrderNumberDuplicated
		}
		return err
	}
	return nil
}

// GetOrderByID 帶出完整 read model: 項目(含商品快照對應的商品)與配送區域
func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems.Product").
		Preload("Section").
		First(&order, "order_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetAllOrders 依建立時間新到舊, status 為空字串時不過濾
// 不分頁, 場館規模下全量回傳可接受
func (s *OrderRepo) GetAllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	query := s.db.WithContext(ctx).
		Preload("OrderItems.Product").
		Preload("Section").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []model.Order
	err := query.Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus 單行覆寫, 不動金額/項目/時間戳
func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	result := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
