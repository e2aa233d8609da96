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

// ItemService owns the item catalog and the stock movement log. The
// stock counter itself is only written by the purchase/sale services;
// this service reads it and guards catalog deletion.
type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	List(ctx context.Context) ([]dto.ItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListMovements(ctx context.Context, filter repository.StockMovementFilter) ([]dto.StockMovementResponse, error)
}

type itemService struct {
	items     repository.ItemRepository
	purchases repository.PurchaseRepository
	sales     repository.SaleRepository
	expenses  repository.ExpenseRepository
	movements repository.StockMovementRepository
}

func NewItemService(
	items repository.ItemRepository,
	purchases repository.PurchaseRepository,
	sales repository.SaleRepository,
	expenses repository.ExpenseRepository,
	movements repository.StockMovementRepository,
) ItemService {
	return &itemService{
		items:     items,
		purchases: purchases,
		sales:     sales,
		expenses:  expenses,
		movements: movements,
	}
}

func mapItem(i *model.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            i.ID.String(),
		ItemName:      i.Name,
		StockQuantity: i.StockQuantity,
		CreatedAt:     i.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	existing, err := s.items.FindByName(ctx, req.ItemName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}
	if existing != nil {
		return nil, apierror.Conflict(fmt.Sprintf("an item named %q already exists", existing.Name))
	}

	item := &model.Item{Name: req.ItemName}
	if req.StockQuantity != nil {
		item.StockQuantity = *req.StockQuantity
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapItem(item), nil
}

func (s *itemService) List(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *mapItem(&items[i]))
	}
	return resp, nil
}

// Delete removes an item unless any purchase, sale, or expense still
// references it. The three reference counts and the delete run inside
// one transaction so a concurrent insert cannot slip past the guard.
func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.items.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("item not found")
		}
		return apierror.Internal(err)
	}

	return runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		purchases, err := s.purchases.CountByItemTx(tx, id)
		if err != nil {
			return apierror.Internal(err)
		}
		sales, err := s.sales.CountByItemTx(tx, id)
		if err != nil {
			return apierror.Internal(err)
		}
		expenses, err := s.expenses.CountByItemTx(tx, id)
		if err != nil {
			return apierror.Internal(err)
		}
		if purchases+sales+expenses > 0 {
			return apierror.Conflict("item is referenced by existing transactions and cannot be deleted")
		}
		if err := s.items.DeleteTx(tx, id); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
}

func (s *itemService) ListMovements(ctx context.Context, filter repository.StockMovementFilter) ([]dto.StockMovementResponse, error) {
	movements, err := s.movements.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.StockMovementResponse, 0, len(movements))
	for i := range movements {
		resp = append(resp, *mapMovement(&movements[i]))
	}
	return resp, nil
}

func mapMovement(m *model.StockMovement) *dto.StockMovementResponse {
	itemName := ""
	if m.Item != nil {
		itemName = m.Item.Name
	}
	var ref *string
	if m.ReferenceID != nil {
		s := m.ReferenceID.String()
		ref = &s
	}
	return &dto.StockMovementResponse{
		ID:          m.ID.String(),
		ItemID:      m.ItemID.String(),
		ItemName:    itemName,
		Kind:        m.Kind,
		Quantity:    m.Quantity,
		StockBefore: m.StockBefore,
		StockAfter:  m.StockAfter,
		Reason:      m.Reason,
		ReferenceID: ref,
		CreatedAt:   m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
