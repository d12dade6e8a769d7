package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// ReplaceLines reemplaza todas las líneas de un pedido editable. Primero
// restaura el stock de los ingredientes de las líneas actuales (reversión
// completa), después corre la misma verificación de disponibilidad de la
// creación contra las líneas nuevas. Si esa verificación falla el pedido queda
// con sus líneas originales pero el stock ya restaurado: riesgo no atómico
// conocido, se registra en el log y la operación falla con el mismo detalle de
// faltantes que la creación.
func (uc *OrderUseCase) ReplaceLines(ctx context.Context, userID, orderID string, in dto.ReplaceLinesRequest) (*dto.OrderResponse, error) {
	resolved, err := uc.resolveLines(in.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var order *entity.Order

	// Fase 1: reversión completa de las líneas actuales.
	err = uc.txRunner.Run(ctx, func(r appinventory.TxRepos) error {
		o, err := r.Orders.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if IsTerminal(o.Status) {
			return domain.ErrConflict
		}
		order = o
		return uc.restoreOrderStock(r, userID, o.ID, now, appinventory.ReasonOrderEdit)
	})
	if err != nil {
		return nil, err
	}

	// Fase 2: verificación estilo creación contra las líneas nuevas.
	items, err := uc.loadStockFor(resolved)
	if err != nil {
		return nil, err
	}
	if err := checkAllLines(resolved, items, now); err != nil {
		uc.log.Warn().Err(err).
			Str("order_id", orderID).
			Msg("edición rechazada tras restaurar stock; el pedido conserva sus líneas originales")
		return nil, err
	}

	// Fase 3: reemplazo de líneas y totales.
	subtotal := decimal.Zero
	newLines := make([]*entity.OrderLine, 0, len(resolved))
	for _, rl := range resolved {
		total := rl.Line.Quantity.Mul(rl.Line.UnitPrice)
		subtotal = subtotal.Add(total)
		newLines = append(newLines, &entity.OrderLine{
			ID:         uuid.New().String(),
			OrderID:    orderID,
			MenuItemID: rl.Line.MenuItemID,
			Quantity:   rl.Line.Quantity,
			UnitPrice:  rl.Line.UnitPrice,
			TotalPrice: total,
		})
	}
	err = uc.txRunner.Run(ctx, func(r appinventory.TxRepos) error {
		if err := r.Orders.DeleteLines(orderID); err != nil {
			return err
		}
		for _, l := range newLines {
			if err := r.Orders.CreateLine(l); err != nil {
				return err
			}
		}
		order.Subtotal = subtotal
		order.TotalAmount = subtotal.Add(order.Tax).Sub(order.Discount)
		order.UpdatedAt = now
		order.UpdatedBy = userID
		return r.Orders.Update(order)
	})
	if err != nil {
		return nil, err
	}

	// Fase 4: consumo y registro de venta de las líneas nuevas, a mejor esfuerzo.
	uc.deductAndRecordSales(ctx, userID, order, resolved, newLines, now)

	return toOrderResponse(order, newLines), nil
}
