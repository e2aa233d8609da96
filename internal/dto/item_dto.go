package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	ItemName string `json:"item_name" validate:"required,min=1,max=120"`
	// Optional opening stock for items that predate their first recorded
	// purchase. Subsequent changes go through purchases/sales only.
	StockQuantity *int `json:"stock_quantity" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID            string `json:"id"`
	ItemName      string `json:"item_name"`
	StockQuantity int    `json:"stock_quantity"`
	CreatedAt     string `json:"created_at"`
}
