package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one user's pending quantity of one product. The composite
// unique index enforces at most one line per (user, product); adding the same
// product again merges into the existing line.
type CartLine struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

// CartLineView is a cart line joined with the product display fields the
// frontend renders.
type CartLineView struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	AddedAt    time.Time       `json:"added_at"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	Thumbnail  string          `json:"thumbnail"`
	Stock      int             `json:"stock"`
	SellerName string          `json:"seller_name"`
	StoreName  string          `json:"store_name"`
}

// CartView is the rendered cart. Count is the sum of line quantities, not the
// number of lines. Total uses the current catalog price; the charged amount
// is re-read at checkout.
type CartView struct {
	Items []CartLineView  `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}
