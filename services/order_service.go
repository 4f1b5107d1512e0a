package services

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/Thurzix/Product-Pit-Stop/common/errors"
	"github.com/Thurzix/Product-Pit-Stop/models"
	"github.com/Thurzix/Product-Pit-Stop/repository"
)

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

type MetaData struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// OrderService is the read side of the order ledger.
type OrderService interface {
	GetUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*OrderListResponse, error)
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// GetUserOrders retrieves paginated orders for a specific user, newest first.
func (s *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*OrderListResponse, error) {
	orders, total, err := s.orders.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	return &OrderListResponse{
		Orders: orders,
		Meta:   buildMeta(page, limit, total),
	}, nil
}

func buildMeta(page, limit int, total int64) MetaData {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return MetaData{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    int64(page) < totalPages,
	}
}
