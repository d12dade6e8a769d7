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

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación de MenuItemRepository sobre PostgreSQL.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador de la carta. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

const menuItemColumns = `id, name, category, price, stock_item_id, status, created_at, updated_at`

// Create inserta un producto de la carta.
func (r *MenuItemRepo) Create(m *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (` + menuItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Category, m.Price, m.StockItemID, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create menu item: %w", err)
	}
	return nil
}

// CreateIngredient inserta una línea de receta.
func (r *MenuItemRepo) CreateIngredient(i *entity.MenuItemIngredient) error {
	query := `
		INSERT INTO menu_item_ingredients (id, menu_item_id, stock_item_id, quantity, unit)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, i.ID, i.MenuItemID, i.StockItemID, i.Quantity, i.Unit)
	if err != nil {
		return fmt.Errorf("create menu ingredient: %w", err)
	}
	return nil
}

// GetByID devuelve el producto o nil si no existe.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`
	m, err := scanMenuItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return m, nil
}

// GetIngredients devuelve la receta de un producto.
func (r *MenuItemRepo) GetIngredients(menuItemID string) ([]*entity.MenuItemIngredient, error) {
	query := `
		SELECT id, menu_item_id, stock_item_id, quantity, unit
		FROM menu_item_ingredients WHERE menu_item_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("get menu ingredients: %w", err)
	}
	defer rows.Close()
	var out []*entity.MenuItemIngredient
	for rows.Next() {
		var i entity.MenuItemIngredient
		if err := rows.Scan(&i.ID, &i.MenuItemID, &i.StockItemID, &i.Quantity, &i.Unit); err != nil {
			return nil, fmt.Errorf("scan menu ingredient: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}

// List devuelve una página de productos y el total.
func (r *MenuItemRepo) List(limit, offset int) ([]*entity.MenuItem, int, error) {
	ctx := context.Background()
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM menu_items`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count menu items: %w", err)
	}
	query := `SELECT ` + menuItemColumns + ` FROM menu_items ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var out []*entity.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := row.Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.StockItemID, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
