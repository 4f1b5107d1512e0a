package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	apperrors "github.com/Thurzix/Product-Pit-Stop/common/errors"
	"github.com/Thurzix/Product-Pit-Stop/common/logger"
	"github.com/Thurzix/Product-Pit-Stop/database"
	"github.com/Thurzix/Product-Pit-Stop/models"
	"github.com/Thurzix/Product-Pit-Stop/repository"
)

// CartService owns the cart mutation rules: one line per (user, product),
// merge on repeated adds, and the advisory stock check. The advisory check
// fails fast for the client; the authoritative check happens inside the
// checkout transaction.
type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, error)
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error
	RemoveLine(ctx context.Context, userID, lineID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	cache    database.CartCache // nil disables caching
	sfg      singleflight.Group
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, cache database.CartCache) CartService {
	return &cartService{
		carts:    carts,
		products: products,
		cache:    cache,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, error) {
	// singleflight collapses concurrent misses for the same user into one
	// store read.
	v, err, _ := s.sfg.Do(userID.String(), func() (interface{}, error) {
		if s.cache != nil {
			cart, err := s.cache.Get(ctx, userID)
			if err == nil {
				return cart, nil
			}
			if !errors.Is(err, database.ErrCacheMiss) {
				logger.Warn(ctx, "cart cache get failed", zap.Error(err))
			}
		}

		lines, err := s.carts.ListByUser(ctx, userID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
		}

		cart := buildCartView(lines)
		if s.cache != nil {
			if err := s.cache.Set(ctx, userID, cart); err != nil {
				logger.Warn(ctx, "cart cache set failed", zap.Error(err))
			}
		}
		return cart, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.CartView), nil
}

func (s *cartService) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return apperrors.ErrInvalidQuantity
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	existing, err := s.carts.FindLine(ctx, userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	newQuantity := quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}
	if newQuantity > product.Stock {
		return &apperrors.InsufficientStockError{
			ProductID: product.ID,
			Available: product.Stock,
			Requested: newQuantity,
		}
	}

	line := existing
	if line == nil {
		line = &models.CartLine{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			AddedAt:   time.Now(),
		}
	}
	line.Quantity = newQuantity

	if err := s.carts.Save(ctx, line); err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	s.invalidateCache(userID)
	return nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error {
	// Setting quantity to zero or below means "take it out of the cart".
	if quantity < 1 {
		return s.RemoveLine(ctx, userID, lineID)
	}

	line, err := s.carts.FindLineByID(ctx, userID, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCartLineNotFound
		}
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	product, err := s.products.FindByID(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	if quantity > product.Stock {
		return &apperrors.InsufficientStockError{
			ProductID: product.ID,
			Available: product.Stock,
			Requested: quantity,
		}
	}

	line.Quantity = quantity
	if err := s.carts.Save(ctx, line); err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	s.invalidateCache(userID)
	return nil
}

func (s *cartService) RemoveLine(ctx context.Context, userID, lineID uuid.UUID) error {
	rows, err := s.carts.Delete(ctx, userID, lineID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if rows == 0 {
		return apperrors.ErrCartLineNotFound
	}

	s.invalidateCache(userID)
	return nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.carts.ClearByUser(ctx, userID); err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	s.invalidateCache(userID)
	return nil
}

func (s *cartService) invalidateCache(userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		logger.Warn(ctx, "cart cache invalidate failed", zap.Error(err))
	}
}

func buildCartView(lines []models.CartLine) *models.CartView {
	view := &models.CartView{
		Items: make([]models.CartLineView, 0, len(lines)),
		Total: decimal.Zero,
	}
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		item := models.CartLineView{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			AddedAt:   line.AddedAt,
			Title:     line.Product.Title,
			Price:     line.Product.Price,
			Thumbnail: line.Product.Thumbnail,
			Stock:     line.Product.Stock,
		}
		if line.Product.Seller != nil {
			item.SellerName = line.Product.Seller.Name
			item.StoreName = line.Product.Seller.StoreName
		}
		view.Items = append(view.Items, item)
		view.Total = view.Total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		view.Count += line.Quantity
	}
	return view
}
