package redis_decorator

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
cache aside 只處理單筆訂單讀取
列表查詢與寫入一律走db, 狀態更新後立即失效該筆快取
輪詢端讀到的是db寫入後重建的結果, 不會讀到失效前的舊狀態
*/
type CacheAsideOrderRepo struct {
	db.IOrderRepository
	redis redis_repo.IOrderRedisRepository
}

func NewCacheAsideOrderRepo(dbRepo db.IOrderRepository, redis redis_repo.IOrderRedisRepository) db.IOrderRepository {
	return &CacheAsideOrderRepo{IOrderRepository: dbRepo, redis: redis}
}

func (o *CacheAsideOrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	cached, err := o.redis.GetOrder(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis_repo.ErrOrderCacheMiss) {
		log.Warn().Err(err).Uint("order_id", id).Msg("order cache read failed")
	}

	order, err := o.IOrderRepository.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 回填失敗不影響讀取結果
	if err := o.redis.SetOrder(ctx, order); err != nil {
		log.Warn().Err(err).Uint("order_id", id).Msg("order cache fill failed")
	}
	return order, nil
}

func (o *CacheAsideOrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	err := o.IOrderRepository.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return err
	}

	// db已更新成功, 快取失效失敗只補償重試, 不讓呼叫端看到錯誤
	if err := o.redis.DeleteOrder(ctx, id); err != nil {
		log.Warn().Err(err).Uint("order_id", id).Msg("order cache invalidate failed, retrying")
		go func() {
			time.Sleep(500 * time.Millisecond)
			o.redis.DeleteOrder(context.Background(), id)
		}()
	}
	return nil
}
