package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, customer_name, customer_phone, order_type, status, subtotal, tax, discount, total_amount, notes, delivered_at, created_at, updated_at, created_by, updated_by`

// Create inserta el pedido.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.CustomerName, o.CustomerPhone, o.OrderType, o.Status,
		o.Subtotal, o.Tax, o.Discount, o.TotalAmount, o.Notes,
		o.DeliveredAt, o.CreatedAt, o.UpdatedAt, o.CreatedBy, o.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// CreateLine inserta una línea del pedido.
func (r *OrderRepo) CreateLine(l *entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (id, order_id, menu_item_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.OrderID, l.MenuItemID, l.Quantity, l.UnitPrice, l.TotalPrice,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create order line: %w", err)
	}
	return nil
}

// GetByID devuelve el pedido o nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate devuelve el pedido bloqueando su fila (SELECT FOR UPDATE), o nil
// si no existe. Serializa transiciones concurrentes sobre el mismo pedido.
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

// GetLines devuelve las líneas de un pedido.
func (r *OrderRepo) GetLines(orderID string) ([]*entity.OrderLine, error) {
	query := `
		SELECT id, order_id, menu_item_id, quantity, unit_price, total_price
		FROM order_lines WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.MenuItemID, &l.Quantity, &l.UnitPrice, &l.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// Update persiste los campos mutables del pedido.
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders SET
			status = $2, subtotal = $3, tax = $4, discount = $5, total_amount = $6,
			notes = $7, delivered_at = $8, updated_at = $9, updated_by = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		o.ID, o.Status, o.Subtotal, o.Tax, o.Discount, o.TotalAmount,
		o.Notes, o.DeliveredAt, o.UpdatedAt, o.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLines borra todas las líneas de un pedido (reemplazo de líneas).
func (r *OrderRepo) DeleteLines(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_lines WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	return nil
}

// List devuelve una página de pedidos, opcionalmente filtrados por estado, y el total.
func (r *OrderRepo) List(status string, limit, offset int) ([]*entity.Order, int, error) {
	ctx := context.Background()
	var total int
	countQuery := `SELECT count(*) FROM orders WHERE ($1 = '' OR status = $1)`
	if err := r.q.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, total, rows.Err()
}

func (r *OrderRepo) getOne(query string, args ...any) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerPhone, &o.OrderType, &o.Status,
		&o.Subtotal, &o.Tax, &o.Discount, &o.TotalAmount, &o.Notes,
		&o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt, &o.CreatedBy, &o.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
