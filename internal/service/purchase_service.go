package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseService interface {
	Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	List(ctx context.Context) ([]dto.PurchaseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type purchaseService struct {
	repo      repository.PurchaseRepository
	items     repository.ItemRepository
	seasons   repository.SeasonRepository
	movements repository.StockMovementRepository
}

func NewPurchaseService(
	repo repository.PurchaseRepository,
	items repository.ItemRepository,
	seasons repository.SeasonRepository,
	movements repository.StockMovementRepository,
) PurchaseService {
	return &purchaseService{repo: repo, items: items, seasons: seasons, movements: movements}
}

// Create inserts the purchase row and increments the item's stock by the
// purchased quantity, atomically. A movement row records the change.
func (s *purchaseService) Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
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

	purchase := &model.Purchase{
		Date:       date,
		ItemID:     itemID,
		SeasonID:   seasonID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		VendorName: req.VendorName,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		stockBefore, err := s.items.CurrentStockTx(tx, itemID)
		if err != nil {
			return apierror.Internal(err)
		}
		if err := s.repo.CreateTx(tx, purchase); err != nil {
			return apierror.Internal(err)
		}
		if err := s.items.AdjustStockTx(tx, itemID, req.Quantity); err != nil {
			return apierror.Internal(err)
		}
		ref := purchase.ID
		mov := &model.StockMovement{
			ItemID:      itemID,
			Kind:        "purchase",
			Quantity:    req.Quantity,
			StockBefore: stockBefore,
			StockAfter:  stockBefore + req.Quantity,
			Reason:      fmt.Sprintf("purchase from %s", req.VendorName),
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

	resp := mapPurchase(purchase)
	resp.ItemName = item.Name
	resp.SeasonName = season.Name
	return resp, nil
}

func (s *purchaseService) List(ctx context.Context) ([]dto.PurchaseResponse, error) {
	purchases, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		resp = append(resp, *mapPurchase(&purchases[i]))
	}
	return resp, nil
}

// Delete reverses the stock effect of the purchase and removes the row,
// atomically: stock goes back down by the purchased quantity.
func (s *purchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("purchase not found")
		}
		return apierror.Internal(err)
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		stockBefore, err := s.items.CurrentStockTx(tx, purchase.ItemID)
		if err != nil {
			return apierror.Internal(err)
		}
		if err := s.items.AdjustStockTx(tx, purchase.ItemID, -purchase.Quantity); err != nil {
			return apierror.Internal(err)
		}
		ref := purchase.ID
		mov := &model.StockMovement{
			ItemID:      purchase.ItemID,
			Kind:        "purchase_reversal",
			Quantity:    -purchase.Quantity,
			StockBefore: stockBefore,
			StockAfter:  stockBefore - purchase.Quantity,
			Reason:      "purchase deleted",
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

func mapPurchase(p *model.Purchase) *dto.PurchaseResponse {
	itemName, seasonName := "", ""
	if p.Item != nil {
		itemName = p.Item.Name
	}
	if p.Season != nil {
		seasonName = p.Season.Name
	}
	return &dto.PurchaseResponse{
		ID:         p.ID.String(),
		Date:       p.Date.Format("2006-01-02"),
		ItemID:     p.ItemID.String(),
		ItemName:   itemName,
		SeasonID:   p.SeasonID.String(),
		SeasonName: seasonName,
		Quantity:   p.Quantity,
		UnitPrice:  p.UnitPrice,
		VendorName: p.VendorName,
		CreatedAt:  p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// parseTransactionRefs converts the validated string fields shared by
// purchase/sale requests into their typed forms.
func parseTransactionRefs(dateStr, itemIDStr, seasonIDStr string) (time.Time, uuid.UUID, uuid.UUID, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, uuid.Nil, uuid.Nil, apierror.Validation("invalid date")
	}
	itemID, err := uuid.Parse(itemIDStr)
	if err != nil {
		return time.Time{}, uuid.Nil, uuid.Nil, apierror.Validation("invalid item_id")
	}
	seasonID, err := uuid.Parse(seasonIDStr)
	if err != nil {
		return time.Time{}, uuid.Nil, uuid.Nil, apierror.Validation("invalid season_id")
	}
	return date, itemID, seasonID, nil
}
