package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase records stock bought in. Creating one increments the item's
// stock quantity by Quantity inside the same transaction; deleting one
// decrements it back.
type Purchase struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	ItemID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SeasonID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VendorName string          `gorm:"not null"`
	CreatedAt  time.Time

	Item   *Item   `gorm:"foreignKey:ItemID"`
	Season *Season `gorm:"foreignKey:SeasonID"`
}
