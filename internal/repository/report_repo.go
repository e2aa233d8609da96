package repository

import (
	"context"
	"time"

	"stockbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportQuery is the resolved, typed form of the report filters. Nil
// fields mean "no filter"; filters combine conjunctively.
type ReportQuery struct {
	SeasonID  *uuid.UUID
	ItemID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ReportRepository is the read-only union over the three transaction
// tables. It never mutates anything.
type ReportRepository interface {
	Purchases(ctx context.Context, q ReportQuery) ([]model.Purchase, error)
	Sales(ctx context.Context, q ReportQuery) ([]model.Sale, error)
	Expenses(ctx context.Context, q ReportQuery) ([]model.Expense, error)
	DistinctItemCountBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func applyFilters(q *gorm.DB, f ReportQuery) *gorm.DB {
	if f.SeasonID != nil {
		q = q.Where("season_id = ?", *f.SeasonID)
	}
	if f.ItemID != nil {
		q = q.Where("item_id = ?", *f.ItemID)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	return q
}

func (r *reportRepo) Purchases(ctx context.Context, f ReportQuery) ([]model.Purchase, error) {
	var rows []model.Purchase
	q := applyFilters(r.db.WithContext(ctx).Model(&model.Purchase{}), f)
	err := q.Preload("Item").Preload("Season").Order("date DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (r *reportRepo) Sales(ctx context.Context, f ReportQuery) ([]model.Sale, error) {
	var rows []model.Sale
	q := applyFilters(r.db.WithContext(ctx).Model(&model.Sale{}), f)
	err := q.Preload("Item").Preload("Season").Order("date DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (r *reportRepo) Expenses(ctx context.Context, f ReportQuery) ([]model.Expense, error) {
	var rows []model.Expense
	q := applyFilters(r.db.WithContext(ctx).Model(&model.Expense{}), f)
	err := q.Preload("Item").Preload("Season").Order("date DESC, id DESC").Find(&rows).Error
	return rows, err
}

// DistinctItemCountBySeason counts items touched by any transaction of
// the season. UNION deduplicates across the three tables.
func (r *reportRepo) DistinctItemCountBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM (
			SELECT item_id FROM purchases WHERE season_id = ?
			UNION
			SELECT item_id FROM sales WHERE season_id = ?
			UNION
			SELECT item_id FROM expenses WHERE season_id = ? AND item_id IS NOT NULL
		) AS season_items`, seasonID, seasonID, seasonID).Scan(&n).Error
	return n, err
}
