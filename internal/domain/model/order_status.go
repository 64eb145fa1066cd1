package model

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // 待處理
	OrderStatusPreparing  OrderStatus = "preparing"  // 製作中
	OrderStatusReady      OrderStatus = "ready"      // 可取餐 (pickup)
	OrderStatusDelivering OrderStatus = "delivering" // 配送中 (delivery)
	OrderStatusCompleted  OrderStatus = "completed"  // 已完成
	OrderStatusCancelled  OrderStatus = "cancelled"  // 已取消
)

// 預期的狀態機
// pending → preparing → {ready | delivering} → completed
// cancelled 只能由 pending 進入
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:  {OrderStatusReady, OrderStatusDelivering},
	OrderStatusReady:      {OrderStatusCompleted},
	OrderStatusDelivering: {OrderStatusCompleted},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s.Valid() && len(orderStatusTransitions[s]) == 0
}

// CanTransitionTo 檢查是否為狀態表內的合法轉移
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
