package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry with a denormalized on-hand quantity.
// StockQuantity is maintained incrementally: only the purchase/sale
// transaction paths may write it, never handlers directly, so it always
// equals Σ purchase quantities − Σ sale quantities for the item.
type Item struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"uniqueIndex;not null"`
	StockQuantity int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
