package dto

import "github.com/shopspring/decimal"

// MenuIngredientRequest línea de receta de un producto del menú.
type MenuIngredientRequest struct {
	StockItemID string          `json:"stock_item_id"`
	Quantity    decimal.Decimal `json:"quantity"` // por unidad vendida
	Unit        string          `json:"unit"`
}

// CreateMenuItemRequest alta de producto de la carta. Un producto simple trae
// StockItemID y ninguna receta; uno compuesto trae Ingredients.
type CreateMenuItemRequest struct {
	Name        string                  `json:"name"`
	Category    string                  `json:"category"`
	Price       decimal.Decimal         `json:"price"`
	StockItemID string                  `json:"stock_item_id"`
	Ingredients []MenuIngredientRequest `json:"ingredients"`
}

// MenuIngredientResponse línea de receta persistida.
type MenuIngredientResponse struct {
	StockItemID string          `json:"stock_item_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

// MenuItemResponse producto del menú con su receta.
type MenuItemResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Category    string                   `json:"category"`
	Price       decimal.Decimal          `json:"price"`
	StockItemID string                   `json:"stock_item_id,omitempty"`
	Status      string                   `json:"status"`
	Ingredients []MenuIngredientResponse `json:"ingredients,omitempty"`
}
