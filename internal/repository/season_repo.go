package repository

import (
	"context"

	"stockbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeasonRepository interface {
	Create(ctx context.Context, s *model.Season) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Season, error)
	FindByName(ctx context.Context, name string) (*model.Season, error)
	List(ctx context.Context) ([]model.Season, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type seasonRepo struct{ db *gorm.DB }

func NewSeasonRepository(db *gorm.DB) SeasonRepository { return &seasonRepo{db: db} }

func (r *seasonRepo) Create(ctx context.Context, s *model.Season) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *seasonRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Season, error) {
	var s model.Season
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepo) FindByName(ctx context.Context, name string) (*model.Season, error) {
	var s model.Season
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepo) List(ctx context.Context) ([]model.Season, error) {
	var seasons []model.Season
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&seasons).Error
	return seasons, err
}

func (r *seasonRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Season{}, "id = ?", id).Error
}

func (r *seasonRepo) DB() *gorm.DB { return r.db }
