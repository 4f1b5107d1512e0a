package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/Thurzix/Product-Pit-Stop/common/errors"
	"github.com/Thurzix/Product-Pit-Stop/common/logger"
	"github.com/Thurzix/Product-Pit-Stop/database"
	"github.com/Thurzix/Product-Pit-Stop/kafka"
	"github.com/Thurzix/Product-Pit-Stop/models"
	"github.com/Thurzix/Product-Pit-Stop/repository"
)

// CheckoutService turns a cart into orders. The whole operation runs in one
// store transaction: every line's stock is re-read under a row lock and
// validated before any stock moves, so either every line becomes an order or
// nothing changes.
type CheckoutService interface {
	Checkout(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type checkoutService struct {
	tx       repository.TxManager
	cache    database.CartCache // nil disables caching
	producer kafka.ProducerAPI  // nil disables eventing
}

func NewCheckoutService(tx repository.TxManager, cache database.CartCache, producer kafka.ProducerAPI) CheckoutService {
	return &checkoutService{
		tx:       tx,
		cache:    cache,
		producer: producer,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var orderIDs []uuid.UUID

	err := s.tx.RunInTx(ctx, func(carts repository.CartRepository, products repository.ProductRepository, orders repository.OrderRepository) error {
		lines, err := carts.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperrors.ErrEmptyCart
		}

		// First pass: lock every product row and validate before any
		// stock moves. Client-cached stock values are never trusted.
		locked := make(map[uuid.UUID]*models.Product, len(lines))
		for _, line := range lines {
			product, err := products.FindByIDForUpdate(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrProductNotFound
				}
				return err
			}
			if line.Quantity > product.Stock {
				return &apperrors.InsufficientStockError{
					ProductID: product.ID,
					Available: product.Stock,
					Requested: line.Quantity,
				}
			}
			locked[line.ProductID] = product
		}

		// Second pass: decrement stock and write one order per line,
		// priced from the locked read.
		for _, line := range lines {
			if err := products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				return err
			}

			product := locked[line.ProductID]
			order := models.Order{
				ID:          uuid.New(),
				UserID:      userID,
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
				PricePaid:   product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
				Status:      models.OrderStatusProcessing,
				PurchasedAt: time.Now(),
			}
			if err := orders.Create(ctx, &order); err != nil {
				return err
			}
			orderIDs = append(orderIDs, order.ID)
		}

		return carts.ClearByUser(ctx, userID)
	})
	if err != nil {
		orderIDs = nil

		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		var stockErr *apperrors.InsufficientStockError
		if errors.As(err, &stockErr) {
			return nil, stockErr
		}
		return nil, apperrors.Wrap(apperrors.ErrTransactionFailure, err)
	}

	s.invalidateCache(userID)
	s.publishOrderPlaced(ctx, userID, orderIDs)

	return orderIDs, nil
}

func (s *checkoutService) invalidateCache(userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		logger.Warn(ctx, "cart cache invalidate failed", zap.Error(err))
	}
}

// publishOrderPlaced notifies fulfillment after the commit. Delivery is
// best-effort; a broker failure never rolls back a placed order.
func (s *checkoutService) publishOrderPlaced(ctx context.Context, userID uuid.UUID, orderIDs []uuid.UUID) {
	if s.producer == nil || len(orderIDs) == 0 {
		return
	}
	evt := models.OrderPlacedEvent{
		Event:     "order.placed",
		UserID:    userID,
		OrderIDs:  orderIDs,
		Timestamp: time.Now(),
	}
	if err := s.producer.SendOrderPlaced(ctx, evt); err != nil {
		logger.Warn(ctx, "failed to publish order.placed event",
			zap.Error(err), zap.String("user_id", userID.String()))
	}
}
