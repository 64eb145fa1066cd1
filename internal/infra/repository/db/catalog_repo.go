package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrSectionNotFound 區域不存在
	ErrSectionNotFound = errors.New("section not found")
)

type CatalogRepo struct {
	db *DbDao
}

func NewCatalogRepo(db *DbDao) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (s *CatalogRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *CatalogRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (s *CatalogRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, "product_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetProductsByIDs 批次查詢, 回傳 map 方便呼叫端比對缺漏的商品
func (s *CatalogRepo) GetProductsByIDs(ctx context.Context, ids []uint) (map[uint]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("product_id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint]model.Product, len(products))
	for _, p := range products {
		result[p.ProductID] = p
	}
	return result, nil
}

// Update - 更新商品
func (s *CatalogRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

func (s *CatalogRepo) CreateSection(ctx context.Context, section *model.Section) error {
	return s.db.WithContext(ctx).Create(section).Error
}

func (s *CatalogRepo) GetAllSections(ctx context.Context) ([]model.Section, error) {
	var sections []model.Section
	err := s.db.WithContext(ctx).Find(&sections).Error
	return sections, err
}

func (s *CatalogRepo) GetSectionByID(ctx context.Context, id uint) (*model.Section, error) {
	var section model.Section
	err := s.db.WithContext(ctx).First(&section, "section_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

// UpdateSectionDelivery 切換區域可否配送, 冪等
// 不影響已指向該區域的訂單
func (s *CatalogRepo) UpdateSectionDelivery(ctx context.Context, id uint, available bool) (*model.Section, error) {
	result := s.db.WithContext(ctx).Model(&model.Section{}).
		Where("section_id = ?", id).
		Update("is_delivery_available", available)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSectionNotFound
	}
	return s.GetSectionByID(ctx, id)
}
