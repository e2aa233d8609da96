package service_test

import (
	"context"
	"testing"
	"time"

	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/repository"
	"stockbook/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReportRepo applies the same conjunctive filtering the SQL layer
// does, over in-memory slices.
type stubReportRepo struct {
	purchases []model.Purchase
	sales     []model.Sale
	expenses  []model.Expense
}

func matches(q repository.ReportQuery, seasonID uuid.UUID, itemID *uuid.UUID, date time.Time) bool {
	if q.SeasonID != nil && seasonID != *q.SeasonID {
		return false
	}
	if q.ItemID != nil && (itemID == nil || *itemID != *q.ItemID) {
		return false
	}
	if q.StartDate != nil && date.Before(*q.StartDate) {
		return false
	}
	if q.EndDate != nil && date.After(*q.EndDate) {
		return false
	}
	return true
}

func (r *stubReportRepo) Purchases(_ context.Context, q repository.ReportQuery) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		id := p.ItemID
		if matches(q, p.SeasonID, &id, p.Date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubReportRepo) Sales(_ context.Context, q repository.ReportQuery) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		id := s.ItemID
		if matches(q, s.SeasonID, &id, s.Date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubReportRepo) Expenses(_ context.Context, q repository.ReportQuery) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		if matches(q, e.SeasonID, e.ItemID, e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubReportRepo) DistinctItemCountBySeason(_ context.Context, seasonID uuid.UUID) (int64, error) {
	seen := map[uuid.UUID]bool{}
	for _, p := range r.purchases {
		if p.SeasonID == seasonID {
			seen[p.ItemID] = true
		}
	}
	for _, s := range r.sales {
		if s.SeasonID == seasonID {
			seen[s.ItemID] = true
		}
	}
	for _, e := range r.expenses {
		if e.SeasonID == seasonID && e.ItemID != nil {
			seen[*e.ItemID] = true
		}
	}
	return int64(len(seen)), nil
}

var _ repository.ReportRepository = (*stubReportRepo)(nil)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func seededReportRepo(seasonID, itemID uuid.UUID) *stubReportRepo {
	return &stubReportRepo{
		purchases: []model.Purchase{
			{ID: uuid.New(), Date: day("2025-04-10"), ItemID: itemID, SeasonID: seasonID,
				Quantity: 10, UnitPrice: decimal.NewFromInt(40)}, // 400
		},
		sales: []model.Sale{
			{ID: uuid.New(), Date: day("2025-05-02"), ItemID: itemID, SeasonID: seasonID,
				Quantity: 4, UnitPrice: decimal.NewFromInt(55)}, // 220
			{ID: uuid.New(), Date: day("2025-05-20"), ItemID: itemID, SeasonID: seasonID,
				Quantity: 6, UnitPrice: decimal.NewFromInt(60)}, // 360
		},
		expenses: []model.Expense{
			{ID: uuid.New(), Date: day("2025-04-12"), SeasonID: seasonID,
				ExpenseType: "transport", Amount: decimal.NewFromInt(50)},
		},
	}
}

func TestDashboardSummary_ProfitEquation(t *testing.T) {
	seasonID, itemID := uuid.New(), uuid.New()
	svc := service.NewReportService(seededReportRepo(seasonID, itemID))

	resp, err := svc.DashboardSummary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "400", resp.Summary.TotalPurchases.String())
	assert.Equal(t, "580", resp.Summary.TotalSales.String())
	assert.Equal(t, "50", resp.Summary.TotalExpenses.String())
	// profit = sales − (purchases + expenses) = 580 − 450
	assert.Equal(t, "130", resp.Summary.Profit.String())
}

func TestDashboardSummary_SeasonScoped(t *testing.T) {
	seasonID, itemID := uuid.New(), uuid.New()
	repo := seededReportRepo(seasonID, itemID)
	// A second season's rows must not leak into the scoped summary.
	otherSeason := uuid.New()
	repo.sales = append(repo.sales, model.Sale{
		ID: uuid.New(), Date: day("2025-06-01"), ItemID: itemID, SeasonID: otherSeason,
		Quantity: 100, UnitPrice: decimal.NewFromInt(99),
	})
	svc := service.NewReportService(repo)

	resp, err := svc.DashboardSummary(context.Background(), seasonID.String())
	require.NoError(t, err)
	assert.Equal(t, "580", resp.Summary.TotalSales.String())
}

func TestDashboardSummary_BadSeasonID(t *testing.T) {
	svc := service.NewReportService(&stubReportRepo{})

	_, err := svc.DashboardSummary(context.Background(), "not-a-uuid")
	assert.ErrorContains(t, err, "invalid season_id")
}

func TestReport_DateRangeInclusive(t *testing.T) {
	seasonID, itemID := uuid.New(), uuid.New()
	svc := service.NewReportService(seededReportRepo(seasonID, itemID))

	resp, err := svc.Report(context.Background(), dto.ReportFilter{
		StartDate: "2025-05-02", EndDate: "2025-05-20",
	})
	require.NoError(t, err)
	// Both boundary sales are in range; the April purchase and expense are out.
	assert.Len(t, resp.Sales, 2)
	assert.Empty(t, resp.Purchases)
	assert.Empty(t, resp.Expenses)
	assert.Equal(t, "580", resp.Summary.TotalSales.String())
	assert.Equal(t, "580", resp.Summary.Profit.String())
}

func TestReport_EchoesFilters(t *testing.T) {
	seasonID, itemID := uuid.New(), uuid.New()
	svc := service.NewReportService(seededReportRepo(seasonID, itemID))

	filter := dto.ReportFilter{SeasonID: seasonID.String(), ItemID: itemID.String()}
	resp, err := svc.Report(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, filter, resp.Filters)
}

func TestSeasonItemsCount(t *testing.T) {
	seasonID, itemID := uuid.New(), uuid.New()
	repo := seededReportRepo(seasonID, itemID)
	// Distinct count: a second item referenced only by an expense.
	secondItem := uuid.New()
	repo.expenses = append(repo.expenses, model.Expense{
		ID: uuid.New(), Date: day("2025-04-15"), SeasonID: seasonID,
		ExpenseType: "storage", Amount: decimal.NewFromInt(10), ItemID: &secondItem,
	})
	svc := service.NewReportService(repo)

	resp, err := svc.SeasonItemsCount(context.Background(), seasonID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ItemCount)
}

func TestSeasonItemsCount_RequiresSeasonID(t *testing.T) {
	svc := service.NewReportService(&stubReportRepo{})

	_, err := svc.SeasonItemsCount(context.Background(), "")
	assert.ErrorContains(t, err, "season_id is required")
}
