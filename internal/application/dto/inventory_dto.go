package dto

import (
	"github.com/shopspring/decimal"
)

// AddBatchRequest ingreso de un lote al libro diario.
// Date y ExpiryDate en formato "YYYY-MM-DD"; Date vacío = hoy.
type AddBatchRequest struct {
	StockItemID string           `json:"stock_item_id"`
	Date        string           `json:"date"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Cost        *decimal.Decimal `json:"cost"`
	ExpiryDate  string           `json:"expiry_date"`
}

// LedgerEntryResponse un lote del libro diario.
type LedgerEntryResponse struct {
	ID                string           `json:"id"`
	StockItemID       string           `json:"stock_item_id"`
	Date              string           `json:"date"`
	Quantity          decimal.Decimal  `json:"quantity"`
	RemainingQuantity decimal.Decimal  `json:"remaining_quantity"`
	Cost              *decimal.Decimal `json:"cost,omitempty"`
	ExpiryDate        string           `json:"expiry_date,omitempty"`
	CreatedAt         string           `json:"created_at"`
	CreatedBy         string           `json:"created_by,omitempty"`
}

// RegisterWasteRequest registro manual de merma.
type RegisterWasteRequest struct {
	StockItemID string          `json:"stock_item_id"`
	Category    string          `json:"category"` // spoiled | manual
	Quantity    decimal.Decimal `json:"quantity"`
	Note        string          `json:"note"`
}

// WasteRecordResponse un registro de merma.
type WasteRecordResponse struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stock_item_id"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Cost        decimal.Decimal `json:"cost"`
	Note        string          `json:"note,omitempty"`
	LoggedBy    string          `json:"logged_by,omitempty"`
	LoggedAt    string          `json:"logged_at"`
}

// SweepSummaryResponse resultado del barrido de vencimientos.
type SweepSummaryResponse struct {
	ProcessedCount int             `json:"processed_count"`
	TotalWasteCost decimal.Decimal `json:"total_waste_cost"`
}

// InventoryLogResponse una entrada del rastro de mutaciones de stock.
type InventoryLogResponse struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stock_item_id"`
	Change      decimal.Decimal `json:"change"`
	Reason      string          `json:"reason"`
	ReferenceID string          `json:"reference_id,omitempty"`
	CreatedAt   string          `json:"created_at"`
	CreatedBy   string          `json:"created_by,omitempty"`
}
