package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/Thurzix/Product-Pit-Stop/common/errors"
	"github.com/Thurzix/Product-Pit-Stop/models"
	"github.com/Thurzix/Product-Pit-Stop/repository"
)

type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Meta     MetaData         `json:"meta"`
}

// ProductService is the read side of the catalog. Product writes belong to
// the seller flows, which live outside this service.
type ProductService interface {
	List(ctx context.Context, page, limit int, category, search string) (*ProductListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context, page, limit int, category, search string) (*ProductListResponse, error) {
	products, total, err := s.products.List(ctx, page, limit, category, search)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	return &ProductListResponse{
		Products: products,
		Meta:     buildMeta(page, limit, total),
	}, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return product, nil
}
