package service_test

import (
	"context"
	"testing"

	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSeasonSvc() (service.SeasonService, *stubSeasonRepo, *stubPurchaseRepo, *stubSaleRepo, *stubExpenseRepo) {
	seasonRepo := newStubSeasonRepo()
	purchaseRepo := newStubPurchaseRepo()
	saleRepo := newStubSaleRepo()
	expenseRepo := newStubExpenseRepo()
	svc := service.NewSeasonService(seasonRepo, purchaseRepo, saleRepo, expenseRepo)
	return svc, seasonRepo, purchaseRepo, saleRepo, expenseRepo
}

func TestCreateSeason_Success(t *testing.T) {
	svc, seasonRepo, _, _, _ := buildSeasonSvc()

	resp, err := svc.Create(context.Background(), dto.CreateSeasonRequest{SeasonName: "Boro 2025"})
	require.NoError(t, err)
	assert.Equal(t, "Boro 2025", resp.SeasonName)
	assert.Len(t, seasonRepo.seasons, 1)
}

func TestCreateSeason_DuplicateCaseInsensitive(t *testing.T) {
	svc, seasonRepo, _, _, _ := buildSeasonSvc()
	seedSeason(t, seasonRepo, "Boro 2025")

	_, err := svc.Create(context.Background(), dto.CreateSeasonRequest{SeasonName: "boro 2025"})
	assert.ErrorContains(t, err, "already exists")
}

func TestDeleteSeason_BlockedWhileReferenced(t *testing.T) {
	svc, seasonRepo, _, saleRepo, _ := buildSeasonSvc()
	season := seedSeason(t, seasonRepo, "Boro 2025")
	saleRepo.sales[uuid.New()] = &model.Sale{ID: uuid.New(), SeasonID: season.ID}

	err := svc.Delete(context.Background(), season.ID)
	require.Error(t, err)
	assert.ErrorContains(t, err, "referenced by existing transactions")
	assert.Len(t, seasonRepo.seasons, 1)
}

func TestDeleteSeason_Unreferenced(t *testing.T) {
	svc, seasonRepo, _, _, _ := buildSeasonSvc()
	season := seedSeason(t, seasonRepo, "Boro 2025")

	require.NoError(t, svc.Delete(context.Background(), season.ID))
	assert.Empty(t, seasonRepo.seasons)
}
