package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord es el registro de ventas por línea de pedido, para analítica.
// Se escribe como paso secundario al crear el pedido; no participa en la
// consistencia del stock.
type SaleRecord struct {
	ID         string
	OrderID    string
	MenuItemID string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal
	SoldAt     time.Time
}
