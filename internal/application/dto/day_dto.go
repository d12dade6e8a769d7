package dto

import "github.com/shopspring/decimal"

// EndDayRequest cierre de un día de operación. Date "YYYY-MM-DD"; vacío = hoy.
type EndDayRequest struct {
	Date string `json:"date"`
}

// StartDayRequest apertura de un día con arrastre de lotes. Date vacío = hoy.
type StartDayRequest struct {
	Date string `json:"date"`
}

// CarriedItem resumen de un lote arrastrado al nuevo día.
type CarriedItem struct {
	StockItemID string          `json:"stock_item_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	ExpiryDate  string          `json:"expiry_date,omitempty"`
}

// StartDayResponse resultado de la apertura: cuántos lotes se arrastraron y cuáles.
type StartDayResponse struct {
	Date         string        `json:"date"`
	CarriedCount int           `json:"carried_count"`
	Items        []CarriedItem `json:"items"`
}

// DayStatusResponse estado de un día.
type DayStatusResponse struct {
	Date    string `json:"date"`
	IsEnded bool   `json:"is_ended"`
	EndedAt string `json:"ended_at,omitempty"`
	EndedBy string `json:"ended_by,omitempty"`
}
