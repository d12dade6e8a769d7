package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de merma.
const (
	WasteCategoryExpired = "expired" // generada por el barrido de vencimientos
	WasteCategorySpoiled = "spoiled"
	WasteCategoryManual  = "manual"
)

// WasteRecord es una pérdida registrada de un insumo. Nunca se modifica;
// la crea el barrido de vencimientos o un registro manual de merma.
type WasteRecord struct {
	ID          string
	StockItemID string
	Category    string
	Quantity    decimal.Decimal
	Unit        string
	Cost        decimal.Decimal // quantity * costo unitario del insumo (0 si no se conoce)
	Note        string
	LoggedBy    string
	LoggedAt    time.Time
}
