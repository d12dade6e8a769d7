package orders_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/orders"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/pkg/logger"
)

// Dobles en memoria para probar el ciclo de vida de pedidos sin BD.

type fakeStockRepo struct {
	items map[string]*entity.StockItem
}

func (f *fakeStockRepo) Create(item *entity.StockItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) { return f.items[id], nil }

func (f *fakeStockRepo) GetByIDs(ids []string) (map[string]*entity.StockItem, error) {
	out := make(map[string]*entity.StockItem)
	for _, id := range ids {
		if it, ok := f.items[id]; ok {
			out[id] = it
		}
	}
	return out, nil
}

func (f *fakeStockRepo) GetForUpdate(id string) (*entity.StockItem, error) { return f.items[id], nil }

func (f *fakeStockRepo) List(limit, offset int) ([]*entity.StockItem, int, error) {
	return nil, 0, nil
}

func (f *fakeStockRepo) Update(item *entity.StockItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeStockRepo) ListExpiredWithStock(now time.Time) ([]*entity.StockItem, error) {
	return nil, nil
}

func (f *fakeStockRepo) MarkExpiredStatuses(now time.Time) (int, error) { return 0, nil }

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (f *fakeLedgerRepo) Create(e *entity.LedgerEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeLedgerRepo) ListForDeduction(stockItemID string, day time.Time) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range f.entries {
		if e.StockItemID == stockItemID && e.Date.Equal(day) && e.RemainingQuantity.GreaterThan(decimal.Zero) {
			out = append(out, e)
		}
	}
	inventory.SortForConsumption(out)
	return out, nil
}

func (f *fakeLedgerRepo) UpdateRemaining(id string, remaining decimal.Decimal) error {
	for _, e := range f.entries {
		if e.ID == id {
			e.RemainingQuantity = remaining
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeLedgerRepo) ListByDay(day time.Time) ([]*entity.LedgerEntry, error) {
	return nil, nil
}

type fakeDayRepo struct{}

func (f *fakeDayRepo) Get(day time.Time) (*entity.DayStatus, error) { return nil, nil }

func (f *fakeDayRepo) Save(ds *entity.DayStatus) error { return nil }

type fakeLogRepo struct {
	logs []*entity.InventoryLog
}

func (f *fakeLogRepo) Create(l *entity.InventoryLog) error {
	f.logs = append(f.logs, l)
	return nil
}

func (f *fakeLogRepo) ListByItem(stockItemID string, limit, offset int) ([]*entity.InventoryLog, error) {
	return nil, nil
}

type fakeWasteRepo struct{}

func (f *fakeWasteRepo) Create(w *entity.WasteRecord) error { return nil }
func (f *fakeWasteRepo) List(from, to *time.Time, limit, offset int) ([]*entity.WasteRecord, int, error) {
	return nil, 0, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	lines  map[string][]*entity.OrderLine
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) CreateLine(l *entity.OrderLine) error {
	f.lines[l.OrderID] = append(f.lines[l.OrderID], l)
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return f.orders[id], nil }

func (f *fakeOrderRepo) GetForUpdate(id string) (*entity.Order, error) { return f.orders[id], nil }

func (f *fakeOrderRepo) GetLines(orderID string) ([]*entity.OrderLine, error) {
	return f.lines[orderID], nil
}

func (f *fakeOrderRepo) Update(o *entity.Order) error {
	if _, ok := f.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) DeleteLines(orderID string) error {
	delete(f.lines, orderID)
	return nil
}

func (f *fakeOrderRepo) List(status string, limit, offset int) ([]*entity.Order, int, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, len(out), nil
}

type fakeSaleRepo struct {
	records []*entity.SaleRecord
}

func (f *fakeSaleRepo) Create(s *entity.SaleRecord) error {
	f.records = append(f.records, s)
	return nil
}

type fakeMenuRepo struct {
	items       map[string]*entity.MenuItem
	ingredients map[string][]*entity.MenuItemIngredient
}

func (f *fakeMenuRepo) Create(m *entity.MenuItem) error {
	f.items[m.ID] = m
	return nil
}

func (f *fakeMenuRepo) CreateIngredient(i *entity.MenuItemIngredient) error {
	f.ingredients[i.MenuItemID] = append(f.ingredients[i.MenuItemID], i)
	return nil
}

func (f *fakeMenuRepo) GetByID(id string) (*entity.MenuItem, error) { return f.items[id], nil }

func (f *fakeMenuRepo) GetIngredients(menuItemID string) ([]*entity.MenuItemIngredient, error) {
	return f.ingredients[menuItemID], nil
}

func (f *fakeMenuRepo) List(limit, offset int) ([]*entity.MenuItem, int, error) {
	return nil, 0, nil
}

type fakeTxRunner struct {
	repos appinventory.TxRepos
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(r appinventory.TxRepos) error) error {
	return fn(f.repos)
}

// fixture arma el caso de uso de pedidos completo sobre los dobles.
type fixture struct {
	stock  *fakeStockRepo
	ledger *fakeLedgerRepo
	logs   *fakeLogRepo
	orders *fakeOrderRepo
	sales  *fakeSaleRepo
	menu   *fakeMenuRepo
	uc     *orders.OrderUseCase
}

func newFixture() *fixture {
	f := &fixture{
		stock:  &fakeStockRepo{items: make(map[string]*entity.StockItem)},
		ledger: &fakeLedgerRepo{},
		logs:   &fakeLogRepo{},
		orders: &fakeOrderRepo{orders: make(map[string]*entity.Order), lines: make(map[string][]*entity.OrderLine)},
		sales:  &fakeSaleRepo{},
		menu:   &fakeMenuRepo{items: make(map[string]*entity.MenuItem), ingredients: make(map[string][]*entity.MenuItemIngredient)},
	}
	days := &fakeDayRepo{}
	tx := &fakeTxRunner{repos: appinventory.TxRepos{
		Stock:  f.stock,
		Ledger: f.ledger,
		Days:   days,
		Logs:   f.logs,
		Orders: f.orders,
		Waste:  &fakeWasteRepo{},
		Sales:  f.sales,
	}}
	ledgerUC := appinventory.NewLedgerUseCase(tx, days, f.ledger)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	f.uc = orders.NewOrderUseCase(tx, ledgerUC, f.orders, f.menu, f.stock, log)
	return f
}

// seedStock registra un insumo con stock agregado y un lote del día por la
// misma cantidad.
func (f *fixture) seedStock(id string, qty int64) *entity.StockItem {
	item := &entity.StockItem{
		ID:           id,
		Name:         id,
		Unit:         "kg",
		CurrentStock: decimal.NewFromInt(qty),
		Cost:         decimal.NewFromInt(1),
		Status:       entity.StockStatusFor(decimal.NewFromInt(qty), decimal.Zero),
	}
	f.stock.items[id] = item
	if qty > 0 {
		f.ledger.entries = append(f.ledger.entries, &entity.LedgerEntry{
			ID:                id + "-lote",
			StockItemID:       id,
			Date:              entity.DayOf(time.Now()),
			Quantity:          decimal.NewFromInt(qty),
			RemainingQuantity: decimal.NewFromInt(qty),
			CreatedAt:         time.Now(),
		})
	}
	return item
}

// seedMenu registra un producto compuesto con su receta (insumo → cantidad por unidad).
func (f *fixture) seedMenu(id string, price int64, recipe map[string]int64) *entity.MenuItem {
	m := &entity.MenuItem{
		ID:     id,
		Name:   id,
		Price:  decimal.NewFromInt(price),
		Status: "active",
	}
	f.menu.items[id] = m
	for stockID, qty := range recipe {
		f.menu.ingredients[id] = append(f.menu.ingredients[id], &entity.MenuItemIngredient{
			ID:          id + "-" + stockID,
			MenuItemID:  id,
			StockItemID: stockID,
			Quantity:    decimal.NewFromInt(qty),
			Unit:        "kg",
		})
	}
	return m
}
