package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a cost entry with no stock side effect. It may optionally
// point at an item and at another transaction it relates to (e.g. the
// transport cost of a specific purchase).
type Expense struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date                time.Time       `gorm:"type:date;not null;index"`
	ExpenseType         string          `gorm:"not null"`
	LinkedTransactionID *uuid.UUID      `gorm:"type:uuid"`
	ItemID              *uuid.UUID      `gorm:"type:uuid;index"`
	Amount              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description         string
	SeasonID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt           time.Time

	Item   *Item   `gorm:"foreignKey:ItemID"`
	Season *Season `gorm:"foreignKey:SeasonID"`
}
