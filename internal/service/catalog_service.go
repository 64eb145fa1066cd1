package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/apperr"
)

type ICatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	ListSections(ctx context.Context) ([]model.Section, error)
	UpdateSectionDelivery(ctx context.Context, id uint, available bool) (*model.Section, error)
}

type CatalogService struct {
	catalogRepo db.ICatalogRepository
}

func NewCatalogService(catalogRepo db.ICatalogRepository) ICatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

func (c *CatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return c.catalogRepo.GetAllProducts(ctx)
}

func (c *CatalogService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := c.catalogRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "Product not found")
		}
		return nil, err
	}
	return product, nil
}

func (c *CatalogService) ListSections(ctx context.Context) ([]model.Section, error) {
	return c.catalogRepo.GetAllSections(ctx)
}

func (c *CatalogService) UpdateSectionDelivery(ctx context.Context, id uint, available bool) (*model.Section, error) {
	section, err := c.catalogRepo.UpdateSectionDelivery(ctx, id, available)
	if err != nil {
		if errors.Is(err, db.ErrSectionNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "Section not found")
		}
		return nil, err
	}
	return section, nil
}
