package service

import (
	"context"
	"errors"
	"fmt"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeasonService interface {
	Create(ctx context.Context, req dto.CreateSeasonRequest) (*dto.SeasonResponse, error)
	List(ctx context.Context) ([]dto.SeasonResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type seasonService struct {
	seasons   repository.SeasonRepository
	purchases repository.PurchaseRepository
	sales     repository.SaleRepository
	expenses  repository.ExpenseRepository
}

func NewSeasonService(
	seasons repository.SeasonRepository,
	purchases repository.PurchaseRepository,
	sales repository.SaleRepository,
	expenses repository.ExpenseRepository,
) SeasonService {
	return &seasonService{
		seasons:   seasons,
		purchases: purchases,
		sales:     sales,
		expenses:  expenses,
	}
}

func mapSeason(s *model.Season) *dto.SeasonResponse {
	return &dto.SeasonResponse{
		ID:         s.ID.String(),
		SeasonName: s.Name,
		CreatedAt:  s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (s *seasonService) Create(ctx context.Context, req dto.CreateSeasonRequest) (*dto.SeasonResponse, error) {
	existing, err := s.seasons.FindByName(ctx, req.SeasonName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}
	if existing != nil {
		return nil, apierror.Conflict(fmt.Sprintf("a season named %q already exists", existing.Name))
	}

	season := &model.Season{Name: req.SeasonName}
	if err := s.seasons.Create(ctx, season); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapSeason(season), nil
}

func (s *seasonService) List(ctx context.Context) ([]dto.SeasonResponse, error) {
	seasons, err := s.seasons.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.SeasonResponse, 0, len(seasons))
	for i := range seasons {
		resp = append(resp, *mapSeason(&seasons[i]))
	}
	return resp, nil
}

// Delete removes a season unless any transaction row still references
// it. Reference checks and the delete share one transaction.
func (s *seasonService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.seasons.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("season not found")
		}
		return apierror.Internal(err)
	}

	return runTx(ctx, s.seasons.DB(), func(tx *gorm.DB) error {
		purchases, err := s.purchases.CountBySeasonTx(tx, id)
		if err != nil {
			return apierror.Internal(err)
		}
		sales, err := s.sales.CountBySeasonTx(tx, id)
		if err != nil {
			return apierror.Internal(err)
		}
		expenses, err := s.expenses.CountBySeasonTx(tx, id)
		if err != nil {
			return apierror.Internal(err)
		}
		if purchases+sales+expenses > 0 {
			return apierror.Conflict("season is referenced by existing transactions and cannot be deleted")
		}
		if err := s.seasons.DeleteTx(tx, id); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
}
