package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un insumo del registro de stock.
const (
	StockStatusActive       = "active"
	StockStatusLowStock     = "low_stock"
	StockStatusOutOfStock   = "out_of_stock"
	StockStatusExpired      = "expired"
	StockStatusDiscontinued = "discontinued"
)

// StockItem representa un insumo perecedero con su stock agregado.
// CurrentStock es la cantidad total disponible entre todos los lotes;
// ExpiryDate es el vencimiento agregado (el más lejano entre los lotes recibidos).
// Invariantes: CurrentStock >= 0; status expired implica CurrentStock = 0.
type StockItem struct {
	ID           string
	Name         string
	Category     string
	Unit         string // kg, l, unidad, etc.
	CurrentStock decimal.Decimal
	MinThreshold decimal.Decimal
	MaxThreshold decimal.Decimal
	Cost         decimal.Decimal // costo unitario de referencia (último ingreso)
	ExpiryDate   *time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsExpired indica si el insumo está vencido por fecha o por estado.
func (s *StockItem) IsExpired(now time.Time) bool {
	if s.Status == StockStatusExpired {
		return true
	}
	return s.ExpiryDate != nil && s.ExpiryDate.Before(now)
}

// StockStatusFor recalcula el estado según cantidad y umbral mínimo.
// No aplica para discontinued ni expired; esos los fija su propio flujo.
func StockStatusFor(quantity, minThreshold decimal.Decimal) string {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return StockStatusOutOfStock
	}
	if minThreshold.GreaterThan(decimal.Zero) && quantity.LessThanOrEqual(minThreshold) {
		return StockStatusLowStock
	}
	return StockStatusActive
}
