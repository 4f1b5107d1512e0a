package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thurzix/Product-Pit-Stop/models"
)

func TestGetUserOrders(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	userID := uuid.New()
	other := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Create(ctx, &models.Order{
			ID:          uuid.New(),
			UserID:      userID,
			ProductID:   uuid.New(),
			Quantity:    1,
			PricePaid:   mustDecimal("10.00"),
			Status:      models.OrderStatusProcessing,
			PurchasedAt: time.Now(),
		}))
	}
	require.NoError(t, store.Create(ctx, &models.Order{
		ID: uuid.New(), UserID: other, ProductID: uuid.New(), Quantity: 1,
		PricePaid: mustDecimal("5.00"), Status: models.OrderStatusProcessing,
	}))

	svc := NewOrderService(store)
	resp, err := svc.GetUserOrders(ctx, userID, 1, 20)
	require.NoError(t, err)

	assert.Len(t, resp.Orders, 3)
	for _, o := range resp.Orders {
		assert.Equal(t, userID, o.UserID)
	}
	assert.Equal(t, int64(3), resp.Meta.Total)
	assert.Equal(t, int64(1), resp.Meta.TotalPages)
	assert.False(t, resp.Meta.HasMore)
}

func TestBuildMeta(t *testing.T) {
	meta := buildMeta(1, 20, 45)
	assert.Equal(t, int64(3), meta.TotalPages)
	assert.True(t, meta.HasMore)

	meta = buildMeta(3, 20, 45)
	assert.False(t, meta.HasMore)

	meta = buildMeta(1, 20, 0)
	assert.Equal(t, int64(0), meta.TotalPages)
	assert.False(t, meta.HasMore)
}
