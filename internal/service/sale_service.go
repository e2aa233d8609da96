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

type SaleService interface {
	Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	List(ctx context.Context) ([]dto.SaleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleService struct {
	repo      repository.SaleRepository
	items     repository.ItemRepository
	seasons   repository.SeasonRepository
	movements repository.StockMovementRepository
}

func NewSaleService(
	repo repository.SaleRepository,
	items repository.ItemRepository,
	seasons repository.SeasonRepository,
	movements repository.StockMovementRepository,
) SaleService {
	return &saleService{repo: repo, items: items, seasons: seasons, movements: movements}
}

// Create validates stock sufficiency and decrements the counter inside
// the same transaction as the sale insert. The stock read happens inside
// the transaction too, so a rejection leaves no trace.
func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	date, itemID, seasonID, err := parseTransactionRefs(req.Date, req.ItemID, req.SeasonID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("item not found")
		}
		return nil, apierror.Internal(err)
	}
	season, err := s.seasons.FindByID(ctx, seasonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("season not found")
		}
		return nil, apierror.Internal(err)
	}

	sale := &model.Sale{
		Date:         date,
		ItemID:       itemID,
		SeasonID:     seasonID,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		CustomerName: req.CustomerName,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		stock, err := s.items.CurrentStockTx(tx, itemID)
		if err != nil {
			return apierror.Internal(err)
		}
		if req.Quantity > stock {
			return apierror.Conflict(fmt.Sprintf(
				"insufficient stock: %d available, %d requested", stock, req.Quantity))
		}
		if err := s.repo.CreateTx(tx, sale); err != nil {
			return apierror.Internal(err)
		}
		if err := s.items.AdjustStockTx(tx, itemID, -req.Quantity); err != nil {
			return apierror.Internal(err)
		}
		ref := sale.ID
		mov := &model.StockMovement{
			ItemID:      itemID,
			Kind:        "sale",
			Quantity:    -req.Quantity,
			StockBefore: stock,
			StockAfter:  stock - req.Quantity,
			Reason:      fmt.Sprintf("sale to %s", req.CustomerName),
			ReferenceID: &ref,
		}
		if err := s.movements.CreateTx(tx, mov); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := mapSale(sale)
	resp.ItemName = item.Name
	resp.SeasonName = season.Name
	return resp, nil
}

func (s *saleService) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, *mapSale(&sales[i]))
	}
	return resp, nil
}

// Delete restores the sold quantity to stock and removes the row,
// atomically. No sufficiency re-validation on the way back.
func (s *saleService) Delete(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("sale not found")
		}
		return apierror.Internal(err)
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		stockBefore, err := s.items.CurrentStockTx(tx, sale.ItemID)
		if err != nil {
			return apierror.Internal(err)
		}
		if err := s.items.AdjustStockTx(tx, sale.ItemID, sale.Quantity); err != nil {
			return apierror.Internal(err)
		}
		ref := sale.ID
		mov := &model.StockMovement{
			ItemID:      sale.ItemID,
			Kind:        "sale_reversal",
			Quantity:    sale.Quantity,
			StockBefore: stockBefore,
			StockAfter:  stockBefore + sale.Quantity,
			Reason:      "sale deleted",
			ReferenceID: &ref,
		}
		if err := s.movements.CreateTx(tx, mov); err != nil {
			return apierror.Internal(err)
		}
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
}

func mapSale(s *model.Sale) *dto.SaleResponse {
	itemName, seasonName := "", ""
	if s.Item != nil {
		itemName = s.Item.Name
	}
	if s.Season != nil {
		seasonName = s.Season.Name
	}
	return &dto.SaleResponse{
		ID:           s.ID.String(),
		Date:         s.Date.Format("2006-01-02"),
		ItemID:       s.ItemID.String(),
		ItemName:     itemName,
		SeasonID:     s.SeasonID.String(),
		SeasonName:   seasonName,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		CustomerName: s.CustomerName,
		CreatedAt:    s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
