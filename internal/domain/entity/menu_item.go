package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem es un producto vendible de la carta. Un producto compuesto lleva su
// receta en Ingredients; un producto simple apunta directo a un insumo vía
// StockItemID (consume 1 unidad del insumo por unidad vendida).
type MenuItem struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	StockItemID *string
	Status      string // active | inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuItemIngredient es una línea de receta: cuánto insumo consume una unidad
// del producto del menú.
type MenuItemIngredient struct {
	ID          string
	MenuItemID  string
	StockItemID string
	Quantity    decimal.Decimal // por unidad vendida
	Unit        string
}
