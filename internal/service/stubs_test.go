package service_test

import (
	"context"
	"strings"
	"testing"

	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────
//
// All stubs return a nil *gorm.DB from DB(), which makes runTx execute
// the transaction body directly. Tx methods therefore receive nil and
// ignore it.

type stubItemRepo struct {
	items map[uuid.UUID]*model.Item
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.Item)}
}

func (r *stubItemRepo) Create(_ context.Context, i *model.Item) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	r.items[i.ID] = i
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *stubItemRepo) FindByName(_ context.Context, name string) (*model.Item, error) {
	for _, i := range r.items {
		if strings.EqualFold(i.Name, name) {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubItemRepo) List(_ context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0, len(r.items))
	for _, i := range r.items {
		items = append(items, *i)
	}
	return items, nil
}

func (r *stubItemRepo) CurrentStockTx(_ *gorm.DB, id uuid.UUID) (int, error) {
	i, ok := r.items[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return i.StockQuantity, nil
}

func (r *stubItemRepo) AdjustStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	i, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	i.StockQuantity += delta
	return nil
}

func (r *stubItemRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

var _ repository.ItemRepository = (*stubItemRepo)(nil)

type stubSeasonRepo struct {
	seasons map[uuid.UUID]*model.Season
}

func newStubSeasonRepo() *stubSeasonRepo {
	return &stubSeasonRepo{seasons: make(map[uuid.UUID]*model.Season)}
}

func (r *stubSeasonRepo) Create(_ context.Context, s *model.Season) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.seasons[s.ID] = s
	return nil
}

func (r *stubSeasonRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Season, error) {
	s, ok := r.seasons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSeasonRepo) FindByName(_ context.Context, name string) (*model.Season, error) {
	for _, s := range r.seasons {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSeasonRepo) List(_ context.Context) ([]model.Season, error) {
	seasons := make([]model.Season, 0, len(r.seasons))
	for _, s := range r.seasons {
		seasons = append(seasons, *s)
	}
	return seasons, nil
}

func (r *stubSeasonRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.seasons, id)
	return nil
}

func (r *stubSeasonRepo) DB() *gorm.DB { return nil }

var _ repository.SeasonRepository = (*stubSeasonRepo)(nil)

type stubPurchaseRepo struct {
	purchases map[uuid.UUID]*model.Purchase
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uuid.UUID]*model.Purchase)}
}

func (r *stubPurchaseRepo) CreateTx(_ *gorm.DB, p *model.Purchase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPurchaseRepo) List(_ context.Context) ([]model.Purchase, error) {
	purchases := make([]model.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		purchases = append(purchases, *p)
	}
	return purchases, nil
}

func (r *stubPurchaseRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.purchases, id)
	return nil
}

func (r *stubPurchaseRepo) CountByItemTx(_ *gorm.DB, itemID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.purchases {
		if p.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (r *stubPurchaseRepo) CountBySeasonTx(_ *gorm.DB, seasonID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.purchases {
		if p.SeasonID == seasonID {
			n++
		}
	}
	return n, nil
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	sales := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		sales = append(sales, *s)
	}
	return sales, nil
}

func (r *stubSaleRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) CountByItemTx(_ *gorm.DB, itemID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.sales {
		if s.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (r *stubSaleRepo) CountBySeasonTx(_ *gorm.DB, seasonID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.sales {
		if s.SeasonID == seasonID {
			n++
		}
	}
	return n, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

type stubExpenseRepo struct {
	expenses map[uuid.UUID]*model.Expense
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{expenses: make(map[uuid.UUID]*model.Expense)}
}

func (r *stubExpenseRepo) CreateTx(_ *gorm.DB, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubExpenseRepo) List(_ context.Context) ([]model.Expense, error) {
	expenses := make([]model.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		expenses = append(expenses, *e)
	}
	return expenses, nil
}

func (r *stubExpenseRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

func (r *stubExpenseRepo) CountByItemTx(_ *gorm.DB, itemID uuid.UUID) (int64, error) {
	var n int64
	for _, e := range r.expenses {
		if e.ItemID != nil && *e.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (r *stubExpenseRepo) CountBySeasonTx(_ *gorm.DB, seasonID uuid.UUID) (int64, error) {
	var n int64
	for _, e := range r.expenses {
		if e.SeasonID == seasonID {
			n++
		}
	}
	return n, nil
}

func (r *stubExpenseRepo) DB() *gorm.DB { return nil }

var _ repository.ExpenseRepository = (*stubExpenseRepo)(nil)

type stubMovementRepo struct {
	movements []model.StockMovement
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, filter repository.StockMovementFilter) ([]model.StockMovement, error) {
	out := make([]model.StockMovement, 0, len(r.movements))
	for _, m := range r.movements {
		if filter.ItemID != nil && m.ItemID != *filter.ItemID {
			continue
		}
		if filter.Kind != "" && m.Kind != filter.Kind {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedItem(t *testing.T, repo *stubItemRepo, name string, stock int) *model.Item {
	t.Helper()
	i := &model.Item{ID: uuid.New(), Name: name, StockQuantity: stock}
	require.NoError(t, repo.Create(context.Background(), i))
	return i
}

func seedSeason(t *testing.T, repo *stubSeasonRepo, name string) *model.Season {
	t.Helper()
	s := &model.Season{ID: uuid.New(), Name: name}
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}
