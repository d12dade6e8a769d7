package dto

import "github.com/shopspring/decimal"

// CreateStockItemRequest alta de insumo en el registro.
type CreateStockItemRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	MaxThreshold decimal.Decimal `json:"max_threshold"`
	Cost         decimal.Decimal `json:"cost"`
	ExpiryDate   string          `json:"expiry_date"` // "YYYY-MM-DD", opcional
}

// UpdateStockItemRequest actualización de umbrales y datos del insumo.
type UpdateStockItemRequest struct {
	Name         string           `json:"name"`
	Unit         string           `json:"unit"`
	MinThreshold *decimal.Decimal `json:"min_threshold"`
	MaxThreshold *decimal.Decimal `json:"max_threshold"`
	Cost         *decimal.Decimal `json:"cost"`
	Discontinue  bool             `json:"discontinue"`
}

// StockItemResponse un insumo del registro.
type StockItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	MaxThreshold decimal.Decimal `json:"max_threshold"`
	Cost         decimal.Decimal `json:"cost"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}
