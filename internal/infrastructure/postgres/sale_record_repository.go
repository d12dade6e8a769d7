package postgres

import (
	"context"
	"fmt"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

var _ repository.SaleRecordRepository = (*SaleRecordRepo)(nil)

// SaleRecordRepo implementación de SaleRecordRepository sobre PostgreSQL.
type SaleRecordRepo struct {
	q Querier
}

// NewSaleRecordRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRecordRepository(q Querier) *SaleRecordRepo {
	return &SaleRecordRepo{q: q}
}

// Create inserta un registro de venta (solo inserción, analítica).
func (r *SaleRecordRepo) Create(s *entity.SaleRecord) error {
	query := `
		INSERT INTO sale_records (id, order_id, menu_item_id, quantity, unit_price, total, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.OrderID, s.MenuItemID, s.Quantity, s.UnitPrice, s.Total, s.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("create sale record: %w", err)
	}
	return nil
}
