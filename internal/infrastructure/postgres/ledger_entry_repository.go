package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo implementación de LedgerEntryRepository sobre PostgreSQL.
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador del libro diario. Pasar pool o tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

const ledgerColumns = `id, stock_item_id, entry_date, quantity, remaining_quantity, cost, expiry_date, created_at, created_by`

// Create inserta un lote en el libro diario.
func (r *LedgerEntryRepo) Create(e *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.StockItemID, e.Date, e.Quantity, e.RemainingQuantity,
		e.Cost, e.ExpiryDate, e.CreatedAt, e.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// ListForDeduction devuelve los lotes con restante de un insumo en un día, en
// orden de consumo FIFO-por-vencimiento: vencimiento ascendente (nulos al
// final) y luego creación ascendente.
func (r *LedgerEntryRepo) ListForDeduction(stockItemID string, day time.Time) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE stock_item_id = $1 AND entry_date = $2 AND remaining_quantity > 0
		ORDER BY expiry_date ASC NULLS LAST, created_at ASC`
	return r.list(query, stockItemID, day)
}

// UpdateRemaining fija la cantidad restante de un lote (solo baja por consumo FIFO).
func (r *LedgerEntryRepo) UpdateRemaining(id string, remaining decimal.Decimal) error {
	query := `UPDATE ledger_entries SET remaining_quantity = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, remaining)
	if err != nil {
		return fmt.Errorf("update remaining: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByDay devuelve todos los lotes de un día (para arrastre y consulta).
func (r *LedgerEntryRepo) ListByDay(day time.Time) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE entry_date = $1
		ORDER BY stock_item_id, expiry_date ASC NULLS LAST, created_at ASC`
	return r.list(query, day)
}

func (r *LedgerEntryRepo) list(query string, args ...any) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var entries []*entity.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanLedgerEntry(row pgx.Row) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	err := row.Scan(
		&e.ID, &e.StockItemID, &e.Date, &e.Quantity, &e.RemainingQuantity,
		&e.Cost, &e.ExpiryDate, &e.CreatedAt, &e.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
