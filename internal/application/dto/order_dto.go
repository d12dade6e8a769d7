package dto

import "github.com/shopspring/decimal"

// OrderLineRequest una línea del pedido. UnitPrice en cero toma el precio de carta.
type OrderLineRequest struct {
	MenuItemID string          `json:"menu_item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest creación de pedido.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	OrderType     string             `json:"order_type"` // dine_in | takeaway | delivery
	Notes         string             `json:"notes"`
	Tax           decimal.Decimal    `json:"tax"`
	Discount      decimal.Decimal    `json:"discount"`
	Lines         []OrderLineRequest `json:"lines"`
}

// TransitionOrderRequest cambio de estado de un pedido.
type TransitionOrderRequest struct {
	Status string `json:"status"`
}

// ReplaceLinesRequest reemplazo completo de las líneas de un pedido editable.
type ReplaceLinesRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// OrderLineResponse una línea persistida.
type OrderLineResponse struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menu_item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderResponse pedido con sus líneas.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	OrderType     string              `json:"order_type"`
	Status        string              `json:"status"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Tax           decimal.Decimal     `json:"tax"`
	Discount      decimal.Decimal     `json:"discount"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Notes         string              `json:"notes,omitempty"`
	DeliveredAt   string              `json:"delivered_at,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
	Lines         []OrderLineResponse `json:"lines"`
}
