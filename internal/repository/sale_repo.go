package repository

import (
	"context"

	"stockbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	CountByItemTx(tx *gorm.DB, itemID uuid.UUID) (int64, error)
	CountBySeasonTx(tx *gorm.DB, seasonID uuid.UUID) (int64, error)

	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Item").Preload("Season").First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Preload("Item").Preload("Season").
		Order("date DESC, id DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Sale{}, "id = ?", id).Error
}

func (r *saleRepo) CountByItemTx(tx *gorm.DB, itemID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.Sale{}).Where("item_id = ?", itemID).Count(&n).Error
	return n, err
}

func (r *saleRepo) CountBySeasonTx(tx *gorm.DB, seasonID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.Sale{}).Where("season_id = ?", seasonID).Count(&n).Error
	return n, err
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
