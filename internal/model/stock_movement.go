package model

import (
	"time"

	"github.com/google/uuid"
)

// StockMovement records every change to an item's stock quantity.
// One row is written inside each purchase/sale create and delete
// transaction, so the movement log always reconciles with the counter.
type StockMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"not null"` // "purchase" | "sale" | "purchase_reversal" | "sale_reversal"
	Quantity    int       `gorm:"not null"` // positive = inbound, negative = outbound
	StockBefore int       `gorm:"not null"`
	StockAfter  int       `gorm:"not null"`
	Reason      string
	ReferenceID *uuid.UUID `gorm:"type:uuid"` // the purchase or sale row that caused the movement
	CreatedAt   time.Time

	Item *Item `gorm:"foreignKey:ItemID"`
}
