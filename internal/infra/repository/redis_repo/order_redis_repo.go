package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type OrderCacheError error

var ErrOrderCacheMiss OrderCacheError = errors.New("order cache miss")

// IOrderRedisRepository 定義 Redis 訂單快取的介面
// 只放組裝完成的 read model, 寫入時由 decorator 負責失效
type IOrderRedisRepository interface {
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
	SetOrder(ctx context.Context, order *model.Order) error
	DeleteOrder(ctx context.Context, orderID uint) error
}

type OrderRedisRepo struct {
	orderCache *redis.Client
	ttl        time.Duration
}

func NewOrderRedisRepo(orderCache *redis.Client, ttl time.Duration) *OrderRedisRepo {
	return &OrderRedisRepo{orderCache: orderCache, ttl: ttl}
}

func generateOrderKey(orderID uint) string {
	return fmt.Sprintf("order:%d:details", orderID)
}

// 錯誤:
//   - ErrOrderCacheMiss: 快取內沒有該訂單
//   - err: 其他錯誤
func (r *OrderRedisRepo) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	raw, err := r.orderCache.Get(ctx, generateOrderKey(orderID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrOrderCacheMiss
		}
		return nil, err
	}

	var order model.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRedisRepo) SetOrder(ctx context.Context, order *model.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return r.orderCache.Set(ctx, generateOrderKey(order.OrderID), raw, r.ttl).Err()
}

func (r *OrderRedisRepo) DeleteOrder(ctx context.Context, orderID uint) error {
	return r.orderCache.Del(ctx, generateOrderKey(orderID)).Err()
}
