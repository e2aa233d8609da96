package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePurchaseRequest struct {
	Date       string          `json:"date"        validate:"required,datetime=2006-01-02"`
	ItemID     string          `json:"item_id"     validate:"required,uuid"`
	SeasonID   string          `json:"season_id"   validate:"required,uuid"`
	Quantity   int             `json:"quantity"    validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"  validate:"required,gt=0"`
	VendorName string          `json:"vendor_name" validate:"required,min=1,max=150"`
}

type CreateSaleRequest struct {
	Date         string          `json:"date"          validate:"required,datetime=2006-01-02"`
	ItemID       string          `json:"item_id"       validate:"required,uuid"`
	SeasonID     string          `json:"season_id"     validate:"required,uuid"`
	Quantity     int             `json:"quantity"      validate:"required,gt=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"    validate:"required,gt=0"`
	CustomerName string          `json:"customer_name" validate:"required,min=1,max=150"`
}

type CreateExpenseRequest struct {
	Date                string          `json:"date"                  validate:"required,datetime=2006-01-02"`
	ExpenseType         string          `json:"expense_type"          validate:"required,min=1,max=100"`
	LinkedTransactionID *string         `json:"linked_transaction_id" validate:"omitempty,uuid"`
	ItemID              *string         `json:"item_id"               validate:"omitempty,uuid"`
	Amount              decimal.Decimal `json:"amount"                validate:"required,gt=0"`
	Description         string          `json:"description"           validate:"max=500"`
	SeasonID            string          `json:"season_id"             validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PurchaseResponse struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	ItemID     string          `json:"item_id"`
	ItemName   string          `json:"item_name"`
	SeasonID   string          `json:"season_id"`
	SeasonName string          `json:"season_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	VendorName string          `json:"vendor_name"`
	CreatedAt  string          `json:"created_at"`
}

type SaleResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	SeasonID     string          `json:"season_id"`
	SeasonName   string          `json:"season_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CustomerName string          `json:"customer_name"`
	CreatedAt    string          `json:"created_at"`
}

type ExpenseResponse struct {
	ID                  string          `json:"id"`
	Date                string          `json:"date"`
	ExpenseType         string          `json:"expense_type"`
	LinkedTransactionID *string         `json:"linked_transaction_id"`
	ItemID              *string         `json:"item_id"`
	ItemName            string          `json:"item_name,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	Description         string          `json:"description"`
	SeasonID            string          `json:"season_id"`
	SeasonName          string          `json:"season_name"`
	CreatedAt           string          `json:"created_at"`
}

type StockMovementResponse struct {
	ID          string  `json:"id"`
	ItemID      string  `json:"item_id"`
	ItemName    string  `json:"item_name"`
	Kind        string  `json:"kind"`
	Quantity    int     `json:"quantity"`
	StockBefore int     `json:"stock_before"`
	StockAfter  int     `json:"stock_after"`
	Reason      string  `json:"reason"`
	ReferenceID *string `json:"reference_id"`
	CreatedAt   string  `json:"created_at"`
}
