package service

import (
	"context"
	"errors"
	"time"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseService interface {
	Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	List(ctx context.Context) ([]dto.ExpenseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseService struct {
	repo    repository.ExpenseRepository
	items   repository.ItemRepository
	seasons repository.SeasonRepository
}

func NewExpenseService(
	repo repository.ExpenseRepository,
	items repository.ItemRepository,
	seasons repository.SeasonRepository,
) ExpenseService {
	return &expenseService{repo: repo, items: items, seasons: seasons}
}

// Create records an expense. No stock side effect, but the referenced
// season (and item, when given) must exist.
func (s *expenseService) Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apierror.Validation("invalid date")
	}
	seasonID, err := uuid.Parse(req.SeasonID)
	if err != nil {
		return nil, apierror.Validation("invalid season_id")
	}

	season, err := s.seasons.FindByID(ctx, seasonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("season not found")
		}
		return nil, apierror.Internal(err)
	}

	expense := &model.Expense{
		Date:        date,
		ExpenseType: req.ExpenseType,
		Amount:      req.Amount,
		Description: req.Description,
		SeasonID:    seasonID,
	}

	var itemName string
	if req.ItemID != nil {
		itemID, err := uuid.Parse(*req.ItemID)
		if err != nil {
			return nil, apierror.Validation("invalid item_id")
		}
		item, err := s.items.FindByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("item not found")
			}
			return nil, apierror.Internal(err)
		}
		expense.ItemID = &itemID
		itemName = item.Name
	}
	if req.LinkedTransactionID != nil {
		linkedID, err := uuid.Parse(*req.LinkedTransactionID)
		if err != nil {
			return nil, apierror.Validation("invalid linked_transaction_id")
		}
		expense.LinkedTransactionID = &linkedID
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, expense); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := mapExpense(expense)
	resp.ItemName = itemName
	resp.SeasonName = season.Name
	return resp, nil
}

func (s *expenseService) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, *mapExpense(&expenses[i]))
	}
	return resp, nil
}

func (s *expenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("expense not found")
		}
		return apierror.Internal(err)
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
}

func mapExpense(e *model.Expense) *dto.ExpenseResponse {
	itemName, seasonName := "", ""
	if e.Item != nil {
		itemName = e.Item.Name
	}
	if e.Season != nil {
		seasonName = e.Season.Name
	}
	var itemID, linkedID *string
	if e.ItemID != nil {
		s := e.ItemID.String()
		itemID = &s
	}
	if e.LinkedTransactionID != nil {
		s := e.LinkedTransactionID.String()
		linkedID = &s
	}
	return &dto.ExpenseResponse{
		ID:                  e.ID.String(),
		Date:                e.Date.Format("2006-01-02"),
		ExpenseType:         e.ExpenseType,
		LinkedTransactionID: linkedID,
		ItemID:              itemID,
		ItemName:            itemName,
		Amount:              e.Amount,
		Description:         e.Description,
		SeasonID:            e.SeasonID.String(),
		SeasonName:          seasonName,
		CreatedAt:           e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
