package inventory_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los repositorios, para probar los casos de uso sin DB.
// No simulan rollback: los tests cubren caminos donde la falla ocurre antes de
// mutar estado.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	items map[string]*entity.StockItem
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{items: make(map[string]*entity.StockItem)}
}

func (f *fakeStockRepo) Create(item *entity.StockItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) {
	return f.items[id], nil
}

func (f *fakeStockRepo) GetByIDs(ids []string) (map[string]*entity.StockItem, error) {
	out := make(map[string]*entity.StockItem)
	for _, id := range ids {
		if it, ok := f.items[id]; ok {
			out[id] = it
		}
	}
	return out, nil
}

func (f *fakeStockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return f.items[id], nil
}

func (f *fakeStockRepo) List(limit, offset int) ([]*entity.StockItem, int, error) {
	var out []*entity.StockItem
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, len(out), nil
}

func (f *fakeStockRepo) Update(item *entity.StockItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeStockRepo) ListExpiredWithStock(now time.Time) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range f.items {
		if it.ExpiryDate != nil && it.ExpiryDate.Before(now) &&
			it.CurrentStock.GreaterThan(decimal.Zero) &&
			it.Status != entity.StockStatusDiscontinued {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) MarkExpiredStatuses(now time.Time) (int, error) {
	n := 0
	for _, it := range f.items {
		if it.ExpiryDate != nil && it.ExpiryDate.Before(now) &&
			it.Status != entity.StockStatusExpired &&
			it.Status != entity.StockStatusDiscontinued {
			it.Status = entity.StockStatusExpired
			n++
		}
	}
	return n, nil
}

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
	var out []*entity.LedgerEntry
	for _, e := range f.entries {
		if e.Date.Equal(day) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeDayRepo struct {
	days map[string]*entity.DayStatus
}

func newFakeDayRepo() *fakeDayRepo {
	return &fakeDayRepo{days: make(map[string]*entity.DayStatus)}
}

func (f *fakeDayRepo) Get(day time.Time) (*entity.DayStatus, error) {
	return f.days[day.Format("2006-01-02")], nil
}

func (f *fakeDayRepo) Save(ds *entity.DayStatus) error {
	f.days[ds.Date.Format("2006-01-02")] = ds
	return nil
}

type fakeLogRepo struct {
	logs []*entity.InventoryLog
}

func (f *fakeLogRepo) Create(l *entity.InventoryLog) error {
	f.logs = append(f.logs, l)
	return nil
}

func (f *fakeLogRepo) ListByItem(stockItemID string, limit, offset int) ([]*entity.InventoryLog, error) {
	var out []*entity.InventoryLog
	for _, l := range f.logs {
		if l.StockItemID == stockItemID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeWasteRepo struct {
	records []*entity.WasteRecord
}

func (f *fakeWasteRepo) Create(w *entity.WasteRecord) error {
	f.records = append(f.records, w)
	return nil
}

func (f *fakeWasteRepo) List(from, to *time.Time, limit, offset int) ([]*entity.WasteRecord, int, error) {
	return f.records, len(f.records), nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	lines  map[string][]*entity.OrderLine
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order), lines: make(map[string][]*entity.OrderLine)}
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

// fakeTxRunner ejecuta el callback directo sobre los mismos repositorios en memoria.
type fakeTxRunner struct {
	repos appinventory.TxRepos
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(r appinventory.TxRepos) error) error {
	return fn(f.repos)
}

// fixture agrupa todos los dobles para armar casos de uso en los tests.
type fixture struct {
	stock  *fakeStockRepo
	ledger *fakeLedgerRepo
	days   *fakeDayRepo
	logs   *fakeLogRepo
	waste  *fakeWasteRepo
	orders *fakeOrderRepo
	sales  *fakeSaleRepo
	tx     *fakeTxRunner
}

func newFixture() *fixture {
	f := &fixture{
		stock:  newFakeStockRepo(),
		ledger: &fakeLedgerRepo{},
		days:   newFakeDayRepo(),
		logs:   &fakeLogRepo{},
		waste:  &fakeWasteRepo{},
		orders: newFakeOrderRepo(),
		sales:  &fakeSaleRepo{},
	}
	f.tx = &fakeTxRunner{repos: appinventory.TxRepos{
		Stock:  f.stock,
		Ledger: f.ledger,
		Days:   f.days,
		Logs:   f.logs,
		Orders: f.orders,
		Waste:  f.waste,
		Sales:  f.sales,
	}}
	return f
}
