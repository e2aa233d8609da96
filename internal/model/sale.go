package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records stock sold out. Creation requires current stock >=
// Quantity and decrements it; deletion increments it back without
// re-validation.
type Sale struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	ItemID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SeasonID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CustomerName string          `gorm:"not null"`
	CreatedAt    time.Time

	Item   *Item   `gorm:"foreignKey:ItemID"`
	Season *Season `gorm:"foreignKey:SeasonID"`
}
