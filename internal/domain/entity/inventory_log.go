package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLog es el rastro append-only de toda mutación de stock: ingreso de
// lote, consumo por pedido, restauración por cancelación y castigo por vencimiento.
// Change lleva signo: positivo suma stock, negativo lo resta.
type InventoryLog struct {
	ID          string
	StockItemID string
	Change      decimal.Decimal
	Reason      string
	ReferenceID string // ID del lote, pedido o merma que originó el cambio
	CreatedAt   time.Time
	CreatedBy   string
}
