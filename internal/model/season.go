package model

import (
	"time"

	"github.com/google/uuid"
)

// Season groups transactions into a trading period (e.g. "Boro 2025").
// Deletion is guarded: a season referenced by any purchase, sale, or
// expense row cannot be removed.
type Season struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
