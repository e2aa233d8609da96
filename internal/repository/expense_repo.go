package repository

import (
	"context"

	"stockbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	CreateTx(tx *gorm.DB, e *model.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	List(ctx context.Context) ([]model.Expense, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	CountByItemTx(tx *gorm.DB, itemID uuid.UUID) (int64, error)
	CountBySeasonTx(tx *gorm.DB, seasonID uuid.UUID) (int64, error)

	DB() *gorm.DB
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) CreateTx(tx *gorm.DB, e *model.Expense) error {
	return tx.Create(e).Error
}

func (r *expenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).Preload("Item").Preload("Season").First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepo) List(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Preload("Item").Preload("Season").
		Order("date DESC, id DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Expense{}, "id = ?", id).Error
}

func (r *expenseRepo) CountByItemTx(tx *gorm.DB, itemID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.Expense{}).Where("item_id = ?", itemID).Count(&n).Error
	return n, err
}

func (r *expenseRepo) CountBySeasonTx(tx *gorm.DB, seasonID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.Expense{}).Where("season_id = ?", seasonID).Count(&n).Error
	return n, err
}

func (r *expenseRepo) DB() *gorm.DB { return r.db }
