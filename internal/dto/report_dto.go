package dto

import "github.com/shopspring/decimal"

// ReportFilter holds the optional, conjunctive filters of the unified
// report. Dates are inclusive bounds on the transaction date.
type ReportFilter struct {
	SeasonID  string `form:"season_id"  json:"season_id,omitempty"  validate:"omitempty,uuid"`
	ItemID    string `form:"item_id"    json:"item_id,omitempty"    validate:"omitempty,uuid"`
	StartDate string `form:"start_date" json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   json:"end_date,omitempty"   validate:"omitempty,datetime=2006-01-02"`
}

// ReportSummary aggregates the filtered set in one pass:
// profit = total_sales − (total_purchases + total_expenses).
type ReportSummary struct {
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	Profit         decimal.Decimal `json:"profit"`
}

type ReportResponse struct {
	Filters   ReportFilter       `json:"filters"`
	Purchases []PurchaseResponse `json:"purchases"`
	Sales     []SaleResponse     `json:"sales"`
	Expenses  []ExpenseResponse  `json:"expenses"`
	Summary   ReportSummary      `json:"summary"`
}

type DashboardSummaryResponse struct {
	SeasonID string        `json:"season_id,omitempty"`
	Summary  ReportSummary `json:"summary"`
}

type SeasonItemsCountResponse struct {
	SeasonID  string `json:"season_id"`
	ItemCount int64  `json:"item_count"`
}
