package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses. Only OrderStatusProcessing is written here; later
// transitions belong to fulfillment.
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is one checked-out cart line. PricePaid is quantity times the catalog
// price read inside the checkout transaction, not the price shown when the
// item entered the cart.
type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	PricePaid   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_paid"`
	Status      string          `gorm:"type:varchar(20);not null;default:'processing'" json:"status"`
	PurchasedAt time.Time       `gorm:"autoCreateTime" json:"purchased_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// OrderPlacedEvent is published to the fulfillment topic after a checkout
// commits.
type OrderPlacedEvent struct {
	Event     string      `json:"event"`
	UserID    uuid.UUID   `json:"user_id"`
	OrderIDs  []uuid.UUID `json:"order_ids"`
	Timestamp time.Time   `json:"timestamp"`
}
