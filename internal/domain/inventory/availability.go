package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// Estado agregado de una verificación de disponibilidad.
const (
	StockCheckAvailable  = "available"
	StockCheckLowStock   = "low_stock"
	StockCheckOutOfStock = "out_of_stock"
)

// Razones de faltante.
const (
	ReasonNotFound     = "not found"
	ReasonExpired      = "expired"
	ReasonOutOfStock   = "out of stock"
	ReasonInsufficient = "insufficient quantity"
)

// IngredientRequirement es una necesidad de insumo por unidad vendida.
type IngredientRequirement struct {
	StockItemID string
	Name        string
	Quantity    decimal.Decimal // por unidad
	Unit        string
}

// MissingIngredient describe un faltante con el detalle para reconstruir la condición.
type MissingIngredient struct {
	StockItemID string          `json:"stock_item_id"`
	Name        string          `json:"name"`
	Reason      string          `json:"reason"`
	Required    decimal.Decimal `json:"required"`
	Available   decimal.Decimal `json:"available"`
}

// AvailabilityResult resultado de la verificación.
type AvailabilityResult struct {
	IsAvailable bool                `json:"is_available"`
	StockStatus string              `json:"stock_status"`
	Missing     []MissingIngredient `json:"missing_ingredients"`
	LowStock    []string            `json:"low_stock_items,omitempty"`
}

// CheckAvailability evalúa, solo con lecturas, si una lista de ingredientes por
// unidad puede cubrirse `multiplier` veces contra el stock agregado actual.
// Un insumo desconocido o vencido cuenta como faltante; un insumo cubierto pero
// en o bajo su umbral mínimo levanta la señal blanda de low_stock sin fallar.
// Cualquier faltante manda: out_of_stock y IsAvailable=false.
func CheckAvailability(reqs []IngredientRequirement, multiplier decimal.Decimal, items map[string]*entity.StockItem, now time.Time) AvailabilityResult {
	res := AvailabilityResult{IsAvailable: true, StockStatus: StockCheckAvailable}

	for _, req := range reqs {
		required := req.Quantity.Mul(multiplier)

		item, found := items[req.StockItemID]
		if !found || item == nil {
			res.Missing = append(res.Missing, MissingIngredient{
				StockItemID: req.StockItemID,
				Name:        req.Name,
				Reason:      ReasonNotFound,
				Required:    required,
				Available:   decimal.Zero,
			})
			continue
		}

		if item.IsExpired(now) {
			res.Missing = append(res.Missing, MissingIngredient{
				StockItemID: item.ID,
				Name:        item.Name,
				Reason:      ReasonExpired,
				Required:    required,
				Available:   decimal.Zero,
			})
			continue
		}

		if item.CurrentStock.LessThan(required) {
			reason := ReasonInsufficient
			if item.CurrentStock.LessThanOrEqual(decimal.Zero) {
				reason = ReasonOutOfStock
			}
			res.Missing = append(res.Missing, MissingIngredient{
				StockItemID: item.ID,
				Name:        item.Name,
				Reason:      reason,
				Required:    required,
				Available:   item.CurrentStock,
			})
			continue
		}

		if item.MinThreshold.GreaterThan(decimal.Zero) && item.CurrentStock.LessThanOrEqual(item.MinThreshold) {
			res.LowStock = append(res.LowStock, item.ID)
		}
	}

	if len(res.Missing) > 0 {
		res.IsAvailable = false
		res.StockStatus = StockCheckOutOfStock
	} else if len(res.LowStock) > 0 {
		res.StockStatus = StockCheckLowStock
	}
	return res
}
