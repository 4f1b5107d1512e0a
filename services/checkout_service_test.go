package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Thurzix/Product-Pit-Stop/common/errors"
	"github.com/Thurzix/Product-Pit-Stop/models"
)

type capturingProducer struct {
	events []models.OrderPlacedEvent
	err    error
}

func (p *capturingProducer) SendOrderPlaced(ctx context.Context, evt models.OrderPlacedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

func TestCheckoutSuccess(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	p1 := store.addProduct("Keyboard", "10.00", 10)
	p2 := store.addProduct("Mouse", "5.50", 4)

	carts := NewCartService(store, store, nil)
	userID := uuid.New()
	require.NoError(t, carts.AddToCart(ctx, userID, p1.ID, 2))
	require.NoError(t, carts.AddToCart(ctx, userID, p2.ID, 4))

	producer := &capturingProducer{}
	svc := NewCheckoutService(store, nil, producer)

	orderIDs, err := svc.Checkout(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orderIDs, 2)

	// One order per line, priced from the stock-checked read.
	require.Len(t, store.orders, 2)
	byProduct := make(map[uuid.UUID]models.Order)
	for _, o := range store.orders {
		byProduct[o.ProductID] = o
	}
	assert.True(t, byProduct[p1.ID].PricePaid.Equal(mustDecimal("20.00")))
	assert.True(t, byProduct[p2.ID].PricePaid.Equal(mustDecimal("22.00")))
	assert.Equal(t, models.OrderStatusProcessing, byProduct[p1.ID].Status)

	// Stock moved and the cart is gone.
	assert.Equal(t, 8, store.products[p1.ID].Stock)
	assert.Equal(t, 0, store.products[p2.ID].Stock)
	lines, _ := store.ListByUser(ctx, userID)
	assert.Empty(t, lines)

	require.Len(t, producer.events, 1)
	evt := producer.events[0]
	assert.Equal(t, "order.placed", evt.Event)
	assert.Equal(t, userID, evt.UserID)
	assert.ElementsMatch(t, orderIDs, evt.OrderIDs)
}

func TestCheckoutRollsBackWhenStockDropped(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	p1 := store.addProduct("Keyboard", "10.00", 10)
	p2 := store.addProduct("Mouse", "5.50", 4)

	carts := NewCartService(store, store, nil)
	userID := uuid.New()
	require.NoError(t, carts.AddToCart(ctx, userID, p1.ID, 2))
	require.NoError(t, carts.AddToCart(ctx, userID, p2.ID, 4))

	// Someone else bought the mice between add and checkout.
	store.products[p2.ID].Stock = 1

	svc := NewCheckoutService(store, nil, &capturingProducer{})
	orderIDs, err := svc.Checkout(ctx, userID)

	var stockErr *apperrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, p2.ID, stockErr.ProductID)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 4, stockErr.Requested)
	assert.Nil(t, orderIDs)

	// Nothing moved: no orders, no decrements, cart intact.
	assert.Empty(t, store.orders)
	assert.Equal(t, 10, store.products[p1.ID].Stock)
	lines, _ := store.ListByUser(ctx, userID)
	assert.Len(t, lines, 2)
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewCheckoutService(store, nil, nil)

	orderIDs, err := svc.Checkout(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	assert.Nil(t, orderIDs)
}

func TestCheckoutChargesCurrentPrice(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	p := store.addProduct("Keyboard", "10.00", 10)

	carts := NewCartService(store, store, nil)
	userID := uuid.New()
	require.NoError(t, carts.AddToCart(ctx, userID, p.ID, 2))

	// The seller repriced after the product went into the cart.
	store.products[p.ID].Price = mustDecimal("12.00")

	svc := NewCheckoutService(store, nil, nil)
	_, err := svc.Checkout(ctx, userID)
	require.NoError(t, err)

	require.Len(t, store.orders, 1)
	assert.True(t, store.orders[0].PricePaid.Equal(mustDecimal("24.00")))
}

func TestCheckoutSurvivesProducerFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	p := store.addProduct("Keyboard", "10.00", 10)

	carts := NewCartService(store, store, nil)
	userID := uuid.New()
	require.NoError(t, carts.AddToCart(ctx, userID, p.ID, 1))

	producer := &capturingProducer{err: assert.AnError}
	svc := NewCheckoutService(store, nil, producer)

	orderIDs, err := svc.Checkout(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, orderIDs, 1)
	assert.Len(t, store.orders, 1)
}
