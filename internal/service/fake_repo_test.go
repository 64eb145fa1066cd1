package service

import (
	"context"
	"sort"
	"time"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/db"
)

// 測試用in-memory repo, 行為對齊db實作:
// 讀取會組裝完整read model, 取餐號碼重複回傳ErrOrderNumberDuplicated

type fakeCatalogRepo struct {
	products map[uint]model.Product
	sections map[uint]model.Section
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		products: make(map[uint]model.Product),
		sections: make(map[uint]model.Section),
	}
}

func (f *fakeCatalogRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	f.products[product.ProductID] = *product
	return nil
}

func (f *fakeCatalogRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	result := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeCatalogRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, db.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeCatalogRepo) GetProductsByIDs(ctx context.Context, ids []uint) (map[uint]model.Product, error) {
	result := make(map[uint]model.Product)
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

func (f *fakeCatalogRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	f.products[product.ProductID] = *product
	return nil
}

func (f *fakeCatalogRepo) CreateSection(ctx context.Context, section *model.Section) error {
	f.sections[section.SectionID] = *section
	return nil
}

func (f *fakeCatalogRepo) GetAllSections(ctx context.Context) ([]model.Section, error) {
	result := make([]model.Section, 0, len(f.sections))
	for _, s := range f.sections {
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeCatalogRepo) GetSectionByID(ctx context.Context, id uint) (*model.Section, error) {
	s, ok := f.sections[id]
	if !ok {
		return nil, db.ErrSectionNotFound
	}
	return &s, nil
}

func (f *fakeCatalogRepo) UpdateSectionDelivery(ctx context.Context, id uint, available bool) (*model.Section, error) {
	s, ok := f.sections[id]
	if !ok {
		return nil, db.ErrSectionNotFound
	}
	s.IsDeliveryAvailable = available
	f.sections[id] = s
	return &s, nil
}

type fakeOrderRepo struct {
	catalog    *fakeCatalogRepo
	orders     map[uint]model.Order
	nextID     uint
	nextItemID uint
	// 模擬unique index: 前n次Create強制回報號碼碰撞
	duplicateHits int
	createCalls   int
}

func newFakeOrderRepo(catalog *fakeCatalogRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		catalog: catalog,
		orders:  make(map[uint]model.Order),
	}
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	f.createCalls++
	if f.duplicateHits > 0 {
		f.duplicateHits--
		return db.ErrOrderNumberDuplicated
	}
	for _, existing := range f.orders {
		if existing.OrderNumber == order.OrderNumber {
			return db.ErrOrderNumberDuplicated
		}
	}

	f.nextID++
	order.OrderID = f.nextID
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Second)
	}
	for i := range order.OrderItems {
		f.nextItemID++
		order.OrderItems[i].OrderItemID = f.nextItemID
		order.OrderItems[i].OrderID = order.OrderID
	}

	f.orders[order.OrderID] = *order
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, db.ErrOrderNotFound
	}
	return f.assemble(order), nil
}

func (f *fakeOrderRepo) GetAllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	result := make([]model.Order, 0, len(f.orders))
	for _, order := range f.orders {
		if status != "" && order.Status != status {
			continue
		}
		result = append(result, *f.assemble(order))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	order, ok := f.orders[id]
	if !ok {
		return db.ErrOrderNotFound
	}
	order.Status = status
	f.orders[id] = order
	return nil
}

// assemble 模擬Preload, 補上商品與區域
func (f *fakeOrderRepo) assemble(order model.Order) *model.Order {
	items := make([]model.OrderItem, len(order.OrderItems))
	copy(items, order.OrderItems)
	for i := range items {
		if p, ok := f.catalog.products[items[i].ProductID]; ok {
			product := p
			items[i].Product = &product
		}
	}
	order.OrderItems = items

	if order.SectionID != nil {
		if s, ok := f.catalog.sections[*order.SectionID]; ok {
			section := s
			order.Section = &section
		}
	}
	return &order
}
