package repository

import (
	"context"

	"stockbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for catalog items and
// the stock ledger. Services depend on this interface, not on the
// concrete GORM implementation, enabling clean unit testing via stubs.
//
// AdjustStockTx and CurrentStockTx take the live transaction handle:
// stock is only ever written from inside a purchase/sale transaction.
type ItemRepository interface {
	Create(ctx context.Context, i *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	FindByName(ctx context.Context, name string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)

	CurrentStockTx(tx *gorm.DB, id uuid.UUID) (int, error)
	AdjustStockTx(tx *gorm.DB, id uuid.UUID, delta int) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, i *model.Item) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var i model.Item
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// FindByName matches case-insensitively: "Rice" and "rice" are the same item.
func (r *itemRepo) FindByName(ctx context.Context, name string) (*model.Item, error) {
	var i model.Item
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error
	return items, err
}

func (r *itemRepo) CurrentStockTx(tx *gorm.DB, id uuid.UUID) (int, error) {
	var i model.Item
	if err := tx.Select("stock_quantity").First(&i, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return i.StockQuantity, nil
}

func (r *itemRepo) AdjustStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Item{}).Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta)).Error
}

func (r *itemRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Item{}, "id = ?", id).Error
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
