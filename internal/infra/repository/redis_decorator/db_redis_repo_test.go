package redis_decorator

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/redis_repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type memOrderCache struct {
	orders   map[uint]*model.Order
	getCalls int
	setCalls int
	delCalls int
}

func newMemOrderCache() *memOrderCache {
	return &memOrderCache{orders: make(map[uint]*model.Order)}
}

func (m *memOrderCache) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	m.getCalls++
	order, ok := m.orders[orderID]
	if !ok {
		return nil, redis_repo.ErrOrderCacheMiss
	}
	return order, nil
}

func (m *memOrderCache) SetOrder(ctx context.Context, order *model.Order) error {
	m.setCalls++
	m.orders[order.OrderID] = order
	return nil
}

func (m *memOrderCache) DeleteOrder(ctx context.Context, orderID uint) error {
	m.delCalls++
	delete(m.orders, orderID)
	return nil
}

type memOrderRepo struct {
	orders  map[uint]*model.Order
	dbReads int
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[uint]*model.Order)}
}

func (m *memOrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	m.orders[order.OrderID] = order
	return nil
}

func (m *memOrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	m.dbReads++
	order, ok := m.orders[id]
	if !ok {
		return nil, db.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (m *memOrderRepo) GetAllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var result []model.Order
	for _, o := range m.orders {
		result = append(result, *o)
	}
	return result, nil
}

func (m *memOrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	order, ok := m.orders[id]
	if !ok {
		return db.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func seedOrder(repo *memOrderRepo) *model.Order {
	order := &model.Order{
		OrderID:     1,
		OrderNumber: "AAA111",
		Status:      model.OrderStatusPending,
		Type:        model.OrderTypePickup,
		TotalAmount: decimal.New(1700, -2),
	}
	repo.orders[order.OrderID] = order
	return order
}

// miss先查db再回填, 之後的讀取命中快取不再打db
func TestGetOrderByID_CacheFill(t *testing.T) {
	dbRepo := newMemOrderRepo()
	cache := newMemOrderCache()
	repo := NewCacheAsideOrderRepo(dbRepo, cache)
	seedOrder(dbRepo)

	order, err := repo.GetOrderByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "AAA111", order.OrderNumber)
	require.Equal(t, 1, dbRepo.dbReads)
	require.Equal(t, 1, cache.setCalls)

	order, err = repo.GetOrderByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "AAA111", order.OrderNumber)
	require.Equal(t, 1, dbRepo.dbReads)
}

func TestGetOrderByID_NotFoundNotCached(t *testing.T) {
	dbRepo := newMemOrderRepo()
	cache := newMemOrderCache()
	repo := NewCacheAsideOrderRepo(dbRepo, cache)

	_, err := repo.GetOrderByID(context.Background(), 999)
	require.ErrorIs(t, err, db.ErrOrderNotFound)
	require.Zero(t, cache.setCalls)
}

// 狀態更新後快取立即失效, 下一次讀取拿到db的新狀態
func TestUpdateOrderStatus_InvalidatesCache(t *testing.T) {
	dbRepo := newMemOrderRepo()
	cache := newMemOrderCache()
	repo := NewCacheAsideOrderRepo(dbRepo, cache)
	seedOrder(dbRepo)

	// 先讓快取有資料
	_, err := repo.GetOrderByID(context.Background(), 1)
	require.NoError(t, err)

	err = repo.UpdateOrderStatus(context.Background(), 1, model.OrderStatusPreparing)
	require.NoError(t, err)
	require.Equal(t, 1, cache.delCalls)

	order, err := repo.GetOrderByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusPreparing, order.Status)
}

func TestUpdateOrderStatus_NotFoundSkipsInvalidate(t *testing.T) {
	dbRepo := newMemOrderRepo()
	cache := newMemOrderCache()
	repo := NewCacheAsideOrderRepo(dbRepo, cache)

	err := repo.UpdateOrderStatus(context.Background(), 999, model.OrderStatusPreparing)
	require.ErrorIs(t, err, db.ErrOrderNotFound)
	require.Zero(t, cache.delCalls)
}
