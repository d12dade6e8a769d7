package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

var _ repository.WasteRecordRepository = (*WasteRecordRepo)(nil)

// WasteRecordRepo implementación de WasteRecordRepository sobre PostgreSQL.
type WasteRecordRepo struct {
	q Querier
}

// NewWasteRecordRepository construye el adaptador de mermas. Pasar pool o tx (Querier).
func NewWasteRecordRepository(q Querier) *WasteRecordRepo {
	return &WasteRecordRepo{q: q}
}

// Create inserta un registro de merma (append-only).
func (r *WasteRecordRepo) Create(w *entity.WasteRecord) error {
	query := `
		INSERT INTO waste_records (id, stock_item_id, category, quantity, unit, cost, note, logged_by, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.StockItemID, w.Category, w.Quantity, w.Unit, w.Cost, w.Note, w.LoggedBy, w.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("create waste record: %w", err)
	}
	return nil
}

// List devuelve una página de mermas, opcionalmente acotada por fechas, y el total.
func (r *WasteRecordRepo) List(from, to *time.Time, limit, offset int) ([]*entity.WasteRecord, int, error) {
	ctx := context.Background()
	var total int
	countQuery := `
		SELECT count(*) FROM waste_records
		WHERE ($1::timestamptz IS NULL OR logged_at >= $1)
		  AND ($2::timestamptz IS NULL OR logged_at < $2)`
	if err := r.q.QueryRow(ctx, countQuery, from, to).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count waste records: %w", err)
	}
	query := `
		SELECT id, stock_item_id, category, quantity, unit, cost, note, logged_by, logged_at
		FROM waste_records
		WHERE ($1::timestamptz IS NULL OR logged_at >= $1)
		  AND ($2::timestamptz IS NULL OR logged_at < $2)
		ORDER BY logged_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list waste records: %w", err)
	}
	defer rows.Close()
	var out []*entity.WasteRecord
	for rows.Next() {
		var w entity.WasteRecord
		if err := rows.Scan(&w.ID, &w.StockItemID, &w.Category, &w.Quantity, &w.Unit, &w.Cost, &w.Note, &w.LoggedBy, &w.LoggedAt); err != nil {
			return nil, 0, fmt.Errorf("scan waste record: %w", err)
		}
		out = append(out, &w)
	}
	return out, total, rows.Err()
}
