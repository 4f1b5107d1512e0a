package models

import (
	"time"

	"github.com/google/uuid"
)

// User holds the seller display fields joined into cart and product reads.
// Account lifecycle (registration, login, password handling) is owned by the
// identity provider, not this service.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	StoreName string    `json:"store_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
