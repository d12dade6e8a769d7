package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Tipos de pedido.
const (
	OrderTypeDineIn   = "dine_in"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
)

// Order representa un pedido de cliente. Subtotal y TotalAmount se calculan a
// partir de las líneas al crear; el estado avanza por la máquina de estados y
// la cancelación dispara la restauración de stock de los ingredientes.
type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	OrderType     string
	Status        string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	TotalAmount   decimal.Decimal
	Notes         string
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
	UpdatedBy     string
}

// OrderLine es una línea del pedido: un producto del menú y su cantidad.
type OrderLine struct {
	ID         string
	OrderID    string
	MenuItemID string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
