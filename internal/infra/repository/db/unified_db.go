package db

import (
	"context"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
)

// ICatalogRepository Product/Section 相關操作介面
type ICatalogRepository interface {
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uint) (map[uint]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	GetAllSections(ctx context.Context) ([]model.Section, error)
	GetSectionByID(ctx context.Context, id uint) (*model.Section, error)
	CreateSection(ctx context.Context, section *model.Section) error
	UpdateSectionDelivery(ctx context.Context, id uint, available bool) (*model.Section, error)
}

// IOrderRepository Order 相關操作介面
// 讀取一律帶出 OrderItems(含Product) 與 Section, 組好 read model
type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetAllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error
}
