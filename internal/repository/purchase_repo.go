package repository

import (
	"context"

	"stockbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseRepository provides CRUD access to purchase rows. CreateTx and
// DeleteTx run inside the caller's transaction so the record write and
// the stock adjustment commit or roll back together.
type PurchaseRepository interface {
	CreateTx(tx *gorm.DB, p *model.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	List(ctx context.Context) ([]model.Purchase, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	CountByItemTx(tx *gorm.DB, itemID uuid.UUID) (int64, error)
	CountBySeasonTx(tx *gorm.DB, seasonID uuid.UUID) (int64, error)

	DB() *gorm.DB
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) CreateTx(tx *gorm.DB, p *model.Purchase) error {
	return tx.Create(p).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).Preload("Item").Preload("Season").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns purchases newest-first: date descending, id descending as
// tie-break for same-day rows.
func (r *purchaseRepo) List(ctx context.Context) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).Preload("Item").Preload("Season").
		Order("date DESC, id DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Purchase{}, "id = ?", id).Error
}

func (r *purchaseRepo) CountByItemTx(tx *gorm.DB, itemID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.Purchase{}).Where("item_id = ?", itemID).Count(&n).Error
	return n, err
}

func (r *purchaseRepo) CountBySeasonTx(tx *gorm.DB, seasonID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.Purchase{}).Where("season_id = ?", seasonID).Count(&n).Error
	return n, err
}

func (r *purchaseRepo) DB() *gorm.DB { return r.db }
