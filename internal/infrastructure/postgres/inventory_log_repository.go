package postgres

import (
	"context"
	"fmt"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación de InventoryLogRepository sobre PostgreSQL.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador del rastro de stock. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create inserta un registro del rastro (append-only).
func (r *InventoryLogRepo) Create(l *entity.InventoryLog) error {
	query := `
		INSERT INTO inventory_logs (id, stock_item_id, change, reason, reference_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.StockItemID, l.Change, l.Reason, l.ReferenceID, l.CreatedAt, l.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create inventory log: %w", err)
	}
	return nil
}

// ListByItem devuelve el rastro de un insumo, del más reciente al más viejo.
func (r *InventoryLogRepo) ListByItem(stockItemID string, limit, offset int) ([]*entity.InventoryLog, error) {
	query := `
		SELECT id, stock_item_id, change, reason, reference_id, created_at, created_by
		FROM inventory_logs WHERE stock_item_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, stockItemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()
	var out []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(&l.ID, &l.StockItemID, &l.Change, &l.Reason, &l.ReferenceID, &l.CreatedAt, &l.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
