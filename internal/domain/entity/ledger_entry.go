package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry es un lote diario: una cantidad fechada de un insumo con su propio
// vencimiento y cantidad restante. Se crea al ingresar mercancía o al arrastrar
// lotes en la apertura del día; RemainingQuantity solo baja por consumo FIFO.
// Invariante: 0 <= RemainingQuantity <= Quantity.
type LedgerEntry struct {
	ID                string
	StockItemID       string
	Date              time.Time // día calendario, normalizado a medianoche
	Quantity          decimal.Decimal
	RemainingQuantity decimal.Decimal
	Cost              *decimal.Decimal
	ExpiryDate        *time.Time
	CreatedAt         time.Time
	CreatedBy         string
}

// DayOf normaliza un instante al inicio de su día calendario (clave del libro diario).
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
