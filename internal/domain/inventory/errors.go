package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
)

// InsufficientStockError detalla un faltante: qué insumo, cuánto se pidió y
// cuánto hay. Envuelve domain.ErrInsufficientStock para errors.Is.
type InsufficientStockError struct {
	StockItemID string          `json:"stock_item_id"`
	ItemName    string          `json:"item_name,omitempty"`
	Required    decimal.Decimal `json:"required"`
	Available   decimal.Decimal `json:"available"`
}

func (e *InsufficientStockError) Error() string {
	name := e.ItemName
	if name == "" {
		name = e.StockItemID
	}
	return fmt.Sprintf("stock insuficiente de %s: requerido %s, disponible %s",
		name, e.Required.String(), e.Available.String())
}

func (e *InsufficientStockError) Unwrap() error { return domain.ErrInsufficientStock }

// UnavailableError agrupa todos los faltantes de una verificación de
// disponibilidad, para que el caller pueda mostrar la lista completa.
type UnavailableError struct {
	Missing []MissingIngredient
}

func (e *UnavailableError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		name := m.Name
		if name == "" {
			name = m.StockItemID
		}
		parts = append(parts, fmt.Sprintf("%s (%s: requerido %s, disponible %s)",
			name, m.Reason, m.Required.String(), m.Available.String()))
	}
	return "ingredientes no disponibles: " + strings.Join(parts, "; ")
}

func (e *UnavailableError) Unwrap() error { return domain.ErrInsufficientStock }
