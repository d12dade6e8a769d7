package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de insumos. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, name, category, unit, current_stock, min_threshold, max_threshold, cost, expiry_date, status, created_at, updated_at`

// Create inserta un insumo. Devuelve ErrDuplicate si ya existe nombre+categoría.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Unit, item.CurrentStock,
		item.MinThreshold, item.MaxThreshold, item.Cost, item.ExpiryDate,
		item.Status, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create stock item: %w", err)
	}
	return nil
}

// GetByID devuelve el insumo o nil si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	item, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

// GetByIDs devuelve un mapa id -> insumo con los que existan.
func (r *StockItemRepo) GetByIDs(ids []string) (map[string]*entity.StockItem, error) {
	out := make(map[string]*entity.StockItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get stock items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		out[item.ID] = item
	}
	return out, rows.Err()
}

// GetForUpdate devuelve el insumo bloqueando la fila (SELECT FOR UPDATE), o nil si no existe.
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	item, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return item, nil
}

// List devuelve una página de insumos y el total.
func (r *StockItemRepo) List(limit, offset int) ([]*entity.StockItem, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM stock_items`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock items: %w", err)
	}
	query := `
		SELECT ` + stockItemColumns + ` FROM stock_items
		ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var items []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// Update persiste los campos mutables del insumo.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items SET
			name = $2, unit = $3, current_stock = $4, min_threshold = $5,
			max_threshold = $6, cost = $7, expiry_date = $8, status = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Unit, item.CurrentStock, item.MinThreshold,
		item.MaxThreshold, item.Cost, item.ExpiryDate, item.Status, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListExpiredWithStock devuelve los insumos vencidos a la fecha, con stock > 0 y
// no discontinuados: los candidatos del barrido de vencimientos.
func (r *StockItemRepo) ListExpiredWithStock(now time.Time) ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + ` FROM stock_items
		WHERE expiry_date IS NOT NULL AND expiry_date < $1
		  AND current_stock > 0 AND status <> $2`
	rows, err := r.q.Query(context.Background(), query, now, entity.StockStatusDiscontinued)
	if err != nil {
		return nil, fmt.Errorf("list expired stock items: %w", err)
	}
	defer rows.Close()
	var items []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// MarkExpiredStatuses marca como expired los insumos ya vencidos sin tocar
// cantidades. Devuelve cuántas filas cambió.
func (r *StockItemRepo) MarkExpiredStatuses(now time.Time) (int, error) {
	query := `
		UPDATE stock_items SET status = $1, updated_at = now()
		WHERE expiry_date IS NOT NULL AND expiry_date < $2
		  AND status NOT IN ($1, $3)`
	tag, err := r.q.Exec(context.Background(), query,
		entity.StockStatusExpired, now, entity.StockStatusDiscontinued)
	if err != nil {
		return 0, fmt.Errorf("mark expired statuses: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *StockItemRepo) scanOne(row pgx.Row) (*entity.StockItem, error) {
	item, err := scanStockItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var it entity.StockItem
	err := row.Scan(
		&it.ID, &it.Name, &it.Category, &it.Unit, &it.CurrentStock,
		&it.MinThreshold, &it.MaxThreshold, &it.Cost, &it.ExpiryDate,
		&it.Status, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
