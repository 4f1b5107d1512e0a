package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the catalog row the cart references. Stock is decremented only
// inside the checkout transaction; every other code path reads it.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"seller_id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Category    string          `gorm:"index" json:"category"`
	VideoURL    string          `json:"video_url"`
	Thumbnail   string          `json:"thumbnail"`
	PostedAt    time.Time       `gorm:"autoCreateTime" json:"posted_at"`

	Seller *User `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}
