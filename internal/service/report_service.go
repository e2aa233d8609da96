package service

import (
	"context"
	"time"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService produces read-only views over committed transaction
// rows. It never mutates anything.
type ReportService interface {
	DashboardSummary(ctx context.Context, seasonID string) (*dto.DashboardSummaryResponse, error)
	Report(ctx context.Context, filter dto.ReportFilter) (*dto.ReportResponse, error)
	SeasonItemsCount(ctx context.Context, seasonID string) (*dto.SeasonItemsCountResponse, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func buildQuery(filter dto.ReportFilter) (repository.ReportQuery, error) {
	var q repository.ReportQuery
	if filter.SeasonID != "" {
		id, err := uuid.Parse(filter.SeasonID)
		if err != nil {
			return q, apierror.Validation("invalid season_id")
		}
		q.SeasonID = &id
	}
	if filter.ItemID != "" {
		id, err := uuid.Parse(filter.ItemID)
		if err != nil {
			return q, apierror.Validation("invalid item_id")
		}
		q.ItemID = &id
	}
	if filter.StartDate != "" {
		d, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			return q, apierror.Validation("invalid start_date")
		}
		q.StartDate = &d
	}
	if filter.EndDate != "" {
		d, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			return q, apierror.Validation("invalid end_date")
		}
		q.EndDate = &d
	}
	return q, nil
}

// summarize walks the filtered rows once, accumulating the three totals
// and profit = sales − (purchases + expenses).
func summarize(purchases []model.Purchase, sales []model.Sale, expenses []model.Expense) dto.ReportSummary {
	totalPurchases := decimal.Zero
	for i := range purchases {
		totalPurchases = totalPurchases.Add(
			purchases[i].UnitPrice.Mul(decimal.NewFromInt(int64(purchases[i].Quantity))))
	}
	totalSales := decimal.Zero
	for i := range sales {
		totalSales = totalSales.Add(
			sales[i].UnitPrice.Mul(decimal.NewFromInt(int64(sales[i].Quantity))))
	}
	totalExpenses := decimal.Zero
	for i := range expenses {
		totalExpenses = totalExpenses.Add(expenses[i].Amount)
	}
	return dto.ReportSummary{
		TotalPurchases: totalPurchases,
		TotalSales:     totalSales,
		TotalExpenses:  totalExpenses,
		Profit:         totalSales.Sub(totalPurchases.Add(totalExpenses)),
	}
}

func (s *reportService) fetch(ctx context.Context, q repository.ReportQuery) ([]model.Purchase, []model.Sale, []model.Expense, error) {
	purchases, err := s.repo.Purchases(ctx, q)
	if err != nil {
		return nil, nil, nil, apierror.Internal(err)
	}
	sales, err := s.repo.Sales(ctx, q)
	if err != nil {
		return nil, nil, nil, apierror.Internal(err)
	}
	expenses, err := s.repo.Expenses(ctx, q)
	if err != nil {
		return nil, nil, nil, apierror.Internal(err)
	}
	return purchases, sales, expenses, nil
}

func (s *reportService) DashboardSummary(ctx context.Context, seasonID string) (*dto.DashboardSummaryResponse, error) {
	q, err := buildQuery(dto.ReportFilter{SeasonID: seasonID})
	if err != nil {
		return nil, err
	}
	purchases, sales, expenses, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryResponse{
		SeasonID: seasonID,
		Summary:  summarize(purchases, sales, expenses),
	}, nil
}

func (s *reportService) Report(ctx context.Context, filter dto.ReportFilter) (*dto.ReportResponse, error) {
	q, err := buildQuery(filter)
	if err != nil {
		return nil, err
	}
	purchases, sales, expenses, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReportResponse{
		Filters:   filter,
		Purchases: make([]dto.PurchaseResponse, 0, len(purchases)),
		Sales:     make([]dto.SaleResponse, 0, len(sales)),
		Expenses:  make([]dto.ExpenseResponse, 0, len(expenses)),
		Summary:   summarize(purchases, sales, expenses),
	}
	for i := range purchases {
		resp.Purchases = append(resp.Purchases, *mapPurchase(&purchases[i]))
	}
	for i := range sales {
		resp.Sales = append(resp.Sales, *mapSale(&sales[i]))
	}
	for i := range expenses {
		resp.Expenses = append(resp.Expenses, *mapExpense(&expenses[i]))
	}
	return resp, nil
}

func (s *reportService) SeasonItemsCount(ctx context.Context, seasonID string) (*dto.SeasonItemsCountResponse, error) {
	if seasonID == "" {
		return nil, apierror.Validation("season_id is required")
	}
	id, err := uuid.Parse(seasonID)
	if err != nil {
		return nil, apierror.Validation("invalid season_id")
	}
	count, err := s.repo.DistinctItemCountBySeason(ctx, id)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return &dto.SeasonItemsCountResponse{SeasonID: seasonID, ItemCount: count}, nil
}
